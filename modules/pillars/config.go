package pillars

import "time"

// Config holds the navigation targets and timing of the pillar pages.
type Config struct {
	// BaseURL is the public origin used for absolute links such as QR codes.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	// EntryURL is where the outbound redirect returns the visitor.
	EntryURL string `env:"ENTRY_URL" envDefault:"/"`
	// ReturnURL is the target of every "Return to the Source" control.
	ReturnURL string `env:"RETURN_URL" envDefault:"/"`
	// RedirectDelay separates opening the storefront from returning to EntryURL.
	RedirectDelay time.Duration `env:"MERCHANDISE_REDIRECT_DELAY" envDefault:"500ms"`
}

const defaultRedirectDelay = 500 * time.Millisecond

func (c Config) withDefaults() Config {
	if c.EntryURL == "" {
		c.EntryURL = "/"
	}
	if c.ReturnURL == "" {
		c.ReturnURL = "/"
	}
	if c.RedirectDelay <= 0 {
		c.RedirectDelay = defaultRedirectDelay
	}
	return c
}
