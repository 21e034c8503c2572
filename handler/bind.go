package handler

import (
	"fmt"
	"net/http"
	"reflect"
)

// PathParams binds string fields tagged `path:"name"` using extract, which
// is usually chi.URLParam. Fields tagged `path:"-"` and untagged fields are
// skipped; missing parameters leave the field empty.
func PathParams(extract func(r *http.Request, key string) string) Bind {
	return func(r *http.Request, v any) error {
		if extract == nil {
			return fmt.Errorf("%w: extractor is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}
		rv = rv.Elem()
		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			sf := rt.Field(i)

			name, ok := sf.Tag.Lookup("path")
			if !ok || name == "-" || !field.CanSet() {
				continue
			}
			if field.Kind() != reflect.String {
				return fmt.Errorf("%w: field %s must be a string", ErrInvalidPath, sf.Name)
			}
			field.SetString(extract(r, name))
		}
		return nil
	}
}
