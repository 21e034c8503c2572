// Package web holds the HTML views and static assets of the site.
//
// Pages are html/template files embedded in the binary and exposed as
// templ components, so the handlers stay agnostic of how markup is
// produced. Every page shares one layout that loads the stylesheet and the
// datastar client used for the tagline tooltips.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/wizardwayz/portal/handler"
	"github.com/wizardwayz/portal/modules/pillars"
)

// DefaultDatastarURL is the datastar client bundle matching datastar-go v1.
const DefaultDatastarURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// ErrTemplate wraps template parse failures.
var ErrTemplate = errors.New("web: invalid template")

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{"home", "pillar", "redirect", "notfound", "error"}

// Options configures the rendered pages.
type Options struct {
	AppName     string
	DatastarURL string
}

// Renderer renders the site pages. It is safe for concurrent use.
type Renderer struct {
	opts  Options
	pages map[string]*template.Template
}

// New parses every page against the shared layout.
func New(opts Options) (*Renderer, error) {
	if opts.AppName == "" {
		opts.AppName = "Wizardwayz"
	}
	if opts.DatastarURL == "" {
		opts.DatastarURL = DefaultDatastarURL
	}

	r := &Renderer{opts: opts, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).ParseFS(templateFS,
			"templates/layout.html",
			"templates/tagline.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, errors.Join(ErrTemplate, fmt.Errorf("page %s: %w", name, err))
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNew is New for package-level wiring; it panics on a template error.
func MustNew(opts Options) *Renderer {
	r, err := New(opts)
	if err != nil {
		panic(err)
	}
	return r
}

// layoutData is passed to the layout; Page reaches the page's content block.
type layoutData struct {
	Title       string
	DatastarURL string
	Page        any
}

func (r *Renderer) page(name, title string, data any) templ.Component {
	full := r.opts.AppName
	if title != "" {
		full = title + " | " + r.opts.AppName
	}
	return templ.FromGoHTML(r.pages[name].Lookup("layout"), layoutData{
		Title:       full,
		DatastarURL: r.opts.DatastarURL,
		Page:        data,
	})
}

type homeData struct {
	pillars.HomePageParams
	Comment template.HTML
}

func (r *Renderer) HomePage(p pillars.HomePageParams) templ.Component {
	return r.page("home", "", homeData{HomePageParams: p, Comment: htmlComment(p.EasterEgg)})
}

// Tagline renders only the tagline block, for in-place re-deals.
func (r *Renderer) Tagline(p pillars.TaglineParams) templ.Component {
	return templ.FromGoHTML(r.pages["home"].Lookup("tagline"), p)
}

func (r *Renderer) PillarPage(p pillars.PillarPageParams) templ.Component {
	return r.page("pillar", p.Name, p)
}

func (r *Renderer) RedirectPage(p pillars.RedirectPageParams) templ.Component {
	return r.page("redirect", p.Name, p)
}

func (r *Renderer) NotFoundPage(p pillars.NotFoundPageParams) templ.Component {
	return r.page("notfound", "Pillar Not Found", p)
}

// ErrorPage renders handler errors with the site layout.
func (r *Renderer) ErrorPage(p handler.ErrorPageParams) templ.Component {
	return r.page("error", http.StatusText(p.StatusCode), p)
}

// Views wires the renderer into the pillars module.
func (r *Renderer) Views() *pillars.Views {
	return &pillars.Views{
		HomePage:     r.HomePage,
		Tagline:      r.Tagline,
		PillarPage:   r.PillarPage,
		RedirectPage: r.RedirectPage,
		NotFoundPage: r.NotFoundPage,
	}
}

// Static serves the embedded assets. Mount it at "/static/".
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

// htmlComment renders text as an HTML comment. html/template drops comments
// written in template source, so the comment is built here.
func htmlComment(text string) template.HTML {
	if text == "" {
		return ""
	}
	// A comment can only be closed by "--", so splitting every pair keeps
	// text inside it.
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	return template.HTML("<!-- " + text + " -->")
}
