package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/wizardwayz/portal/pkg/logger"
	"github.com/wizardwayz/portal/pkg/requestid"
)

// ErrorPageParams is passed to the configured error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	ReturnURL  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the error. Without it a plain-text response is sent.
	ErrorPage func(ErrorPageParams) templ.Component

	// Target is the selector the error page is patched into on datastar
	// requests. Defaults to "main".
	Target string

	// ReturnURL is offered on the error page. Defaults to "/".
	ReturnURL string
}

type errorInfo struct {
	status  int
	message string
	level   slog.Level
}

func classifyError(err error) errorInfo {
	info := errorInfo{
		status:  http.StatusInternalServerError,
		message: "Something went sideways. Please try again.",
		level:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.status = httpErr.Code
		info.message = httpErr.Key
	}
	if info.status < http.StatusInternalServerError {
		info.level = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns the application error handler. It logs at warn
// for 4xx and error for 5xx, then renders ErrorPage with the error status.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Target == "" {
		cfg.Target = "main"
	}
	if cfg.ReturnURL == "" {
		cfg.ReturnURL = "/"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		id := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.level, "request error",
			logger.RequestID(id),
			logger.Error(err),
			logger.HTTPRequest(r.Method, r.URL.Path, info.status),
			logger.Component("error_handler"),
		)

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.message, info.status)
			return
		}

		page := cfg.ErrorPage(ErrorPageParams{
			Error:      info.message,
			StatusCode: info.status,
			RequestID:  id,
			ReturnURL:  cfg.ReturnURL,
		})
		resp := TemplWithStatus(page, info.status, WithTarget(cfg.Target), WithPatchMode(PatchInner))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error page",
				logger.RequestID(id),
				logger.Error(renderErr),
				logger.Event("render_error_page"),
			)
		}
	}
}
