// Package clientip determines the originating address of an HTTP request.
//
// Forwarding headers are only consulted when the server sits behind a proxy
// that sets them; otherwise any client could spoof its address. Middleware
// stores the resolved address in the request context for access logging.
package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ProxyHeaders lists forwarding headers in priority order. X-Forwarded-For
// is read left to right and its first valid address wins.
var ProxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest returns the client address of r, or "" if none can be parsed.
// With trustProxy set, ProxyHeaders take precedence over RemoteAddr.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, h := range ProxyHeaders {
			v := r.Header.Get(h)
			if v == "" {
				continue
			}
			for candidate := range strings.SplitSeq(v, ",") {
				if ip := parse(candidate); ip != "" {
					return ip
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type ctxKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ctxKey{}).(string)
	return ip
}

// Middleware resolves the client address once per request and stores it in
// the request context.
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
