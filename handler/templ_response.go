package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page on
// datastar requests.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	options []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		// SSE responses always carry 200; the status only applies to full pages.
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	return t.full.Render(r.Context(), w)
}

// Templ renders component as a full page, or patches it into the page via
// SSE on datastar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplWithStatus(component, http.StatusOK, opts...)
}

// TemplWithStatus is Templ with a non-200 status for full page renders.
func TemplWithStatus(component templ.Component, status int, opts ...TemplOption) Response {
	return templResponse{partial: component, full: component, status: status, options: opts}
}

// TemplPartial renders full for regular requests and only partial for
// datastar requests.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: partial, full: full, status: http.StatusOK, options: opts}
}
