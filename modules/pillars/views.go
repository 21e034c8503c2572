package pillars

import (
	"github.com/a-h/templ"

	"github.com/wizardwayz/portal/pkg/pillar"
)

// EasterEgg is logged to the browser console and left as an HTML comment on
// the homepage.
const EasterEgg = "Do you ever get the feeling like you're going in circles?"

// Hint is shown under the tagline.
const Hint = "Hover over the golden letters to reveal the pillars"

// Views renders the pillar pages. Every field is required.
type Views struct {
	HomePage     func(HomePageParams) templ.Component
	Tagline      func(TaglineParams) templ.Component
	PillarPage   func(PillarPageParams) templ.Component
	RedirectPage func(RedirectPageParams) templ.Component
	NotFoundPage func(NotFoundPageParams) templ.Component
}

type HomePageParams struct {
	Tagline   TaglineParams
	Hint      string
	EasterEgg string
	// ShuffleURL re-deals the tagline in place for datastar clients.
	ShuffleURL string
}

type PillarPageParams struct {
	Name     string
	Slug     string
	Category pillar.Category
	// Badge is the category label, e.g. "M-Pillar".
	Badge     string
	ReturnURL string
	QRCodeURL string
}

type RedirectPageParams struct {
	Name        string
	StoreURL    string
	EntryURL    string
	DelayMillis int64
}

type NotFoundPageParams struct {
	Slug      string
	ReturnURL string
}
