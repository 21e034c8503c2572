package slug

import (
	"strings"
	"unicode"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength truncates the slug to n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator replaces the default "-" between words.
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls case folding. Enabled by default.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Make turns s into a URL-safe path segment. ASCII letters and digits are
// kept, every other run of characters collapses into a single separator, and
// leading or trailing separators are dropped.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	runes := 0
	for _, r := range s {
		if cfg.maxLength > 0 && runes >= cfg.maxLength {
			break
		}
		if !isSafe(r) {
			pendingSep = runes > 0
			continue
		}
		if pendingSep {
			sepLen := len([]rune(cfg.separator))
			if cfg.maxLength > 0 && runes+sepLen >= cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			runes += sepLen
			pendingSep = false
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		runes++
	}

	return b.String()
}

// Valid reports whether s is already in the form Make produces with default
// options.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}

func isSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
