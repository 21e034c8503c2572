package pillars

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wizardwayz/portal/handler"
	"github.com/wizardwayz/portal/pkg/cache"
	"github.com/wizardwayz/portal/pkg/logger"
	"github.com/wizardwayz/portal/pkg/pillar"
	"github.com/wizardwayz/portal/pkg/qrcode"
)

const qrCodeSize = 512

// Service serves the homepage and the pillar pages.
type Service struct {
	cfg          Config
	registry     *pillar.Registry
	selector     *pillar.Selector
	resolver     *Resolver
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
	qrCodes      *cache.LRU[string, []byte]
}

func NewService(
	cfg Config,
	registry *pillar.Registry,
	selector *pillar.Selector,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cfg:          cfg.withDefaults(),
		registry:     registry,
		selector:     selector,
		resolver:     NewResolver(registry),
		views:        views,
		errorHandler: errorHandler,
		log:          log.With(logger.Component("pillars")),
		qrCodes:      cache.New[string, []byte](max(len(registry.All()), 1)),
	}
}

// Handle returns the module router. It is meant to be mounted at "/".
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.home,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		handler.WithDecorators(noStore[struct{}]()),
	))

	r.Get("/pillars/{slug}", handler.Wrap(s.show,
		handler.WithBinders[handler.Context, slugRequest](handler.PathParams(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, slugRequest](s.errorHandler),
	))

	r.Get("/pillars/{slug}/qr.png", handler.Wrap(s.qrCode,
		handler.WithBinders[handler.Context, slugRequest](handler.PathParams(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, slugRequest](s.errorHandler),
	))

	r.NotFound(handler.Wrap(s.notFound,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

type slugRequest struct {
	Slug string `path:"slug"`
}

// home deals a fresh assignment on every view. Datastar requests get only
// the tagline so the letters can be re-dealt in place.
func (s *Service) home(ctx handler.Context, _ struct{}) handler.Response {
	assignment := s.selector.Assign(s.registry, pillar.TaglineSlots)
	tagline := BuildTagline(assignment)

	s.log.DebugContext(ctx, "tagline dealt",
		slog.Any("m", assignment.M),
		slog.Any("e", assignment.E),
	)

	return handler.TemplPartial(
		s.views.Tagline(tagline),
		s.views.HomePage(HomePageParams{
			Tagline:    tagline,
			Hint:       Hint,
			EasterEgg:  EasterEgg,
			ShuffleURL: "/",
		}),
		handler.WithTarget("#tagline"),
	)
}

func (s *Service) show(ctx handler.Context, req slugRequest) handler.Response {
	res, err := s.resolver.Resolve(ctx, req.Slug)
	if err != nil {
		return errorResponse(err)
	}

	switch {
	case res.State == StateNotFound:
		if canonical, ok := s.canonicalSlug(ctx, req.Slug); ok {
			return handler.RedirectWithCode(PillarPath(canonical), http.StatusMovedPermanently)
		}
		s.log.WarnContext(ctx, "pillar not found", logger.Slug(req.Slug))
		return handler.TemplWithStatus(s.views.NotFoundPage(NotFoundPageParams{
			Slug:      req.Slug,
			ReturnURL: s.cfg.ReturnURL,
		}), http.StatusNotFound)

	case res.Redirects():
		s.log.InfoContext(ctx, "pillar redirects outbound",
			logger.Pillar(res.Pillar.Name),
			slog.String("outbound", res.Outbound),
		)
		return handler.Templ(s.views.RedirectPage(RedirectPageParams{
			Name:        res.Pillar.Name,
			StoreURL:    res.Outbound,
			EntryURL:    s.cfg.EntryURL,
			DelayMillis: s.cfg.RedirectDelay.Milliseconds(),
		}))

	default:
		s.log.DebugContext(ctx, "pillar resolved",
			logger.Pillar(res.Pillar.Name),
			logger.Category(res.Pillar.Category.String()),
		)
		return handler.Templ(s.views.PillarPage(PillarPageParams{
			Name:      res.Pillar.Name,
			Slug:      res.Pillar.Slug(),
			Category:  res.Pillar.Category,
			Badge:     res.Pillar.Category.String() + "-Pillar",
			ReturnURL: s.cfg.ReturnURL,
			QRCodeURL: PillarPath(res.Pillar.Slug()) + "/qr.png",
		}))
	}
}

// notFound renders the pillar not-found view for any unmatched path.
func (s *Service) notFound(ctx handler.Context, _ struct{}) handler.Response {
	s.log.DebugContext(ctx, "no route", slog.String("path", ctx.Request().URL.Path))
	return handler.TemplWithStatus(s.views.NotFoundPage(NotFoundPageParams{
		ReturnURL: s.cfg.ReturnURL,
	}), http.StatusNotFound)
}

// canonicalSlug returns the lowercase form of slug when it differs from
// slug and names a pillar.
func (s *Service) canonicalSlug(ctx handler.Context, slug string) (string, bool) {
	lower := pillar.Slugify(slug)
	if lower == slug {
		return "", false
	}
	res, err := s.resolver.Resolve(ctx, lower)
	if err != nil || res.State != StateFound {
		return "", false
	}
	return lower, true
}

func (s *Service) qrCode(ctx handler.Context, req slugRequest) handler.Response {
	res, err := s.resolver.Resolve(ctx, req.Slug)
	if err != nil {
		return errorResponse(err)
	}
	if res.State != StateFound {
		return errorResponse(handler.ErrNotFound)
	}

	target := strings.TrimRight(s.cfg.BaseURL, "/") + PillarPath(res.Pillar.Slug())
	png, err := s.qrCodes.GetOrLoad(target, func(content string) ([]byte, error) {
		return qrcode.Generate(content, qrCodeSize)
	})
	if err != nil {
		return errorResponse(err)
	}
	return handler.CachedBlob("image/png", "public, max-age=86400", png)
}

// failed defers err to the error handler configured on the route.
type failed struct{ err error }

func (f failed) Render(http.ResponseWriter, *http.Request) error { return f.err }

func errorResponse(err error) handler.Response {
	return failed{err: err}
}

// noStore marks a response as uncacheable. The homepage is dealt per view.
func noStore[R any]() handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			ctx.ResponseWriter().Header().Set("Cache-Control", "no-store")
			return next(ctx, req)
		}
	}
}
