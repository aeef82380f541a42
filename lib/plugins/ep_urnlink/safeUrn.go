package ep_urnlink

import (
	"regexp"

	"go.uber.org/zap"
)

const (
	DefaultTrustedScheme = "urn:lex:br"
	DefaultPlaceholder   = "#"
)

var attributeWhitespaces = regexp.MustCompile(`[\x{0000}-\x{0020}\x{00A0}\x{1680}\x{180E}\x{2000}-\x{2029}\x{205F}\x{3000}]`)

// UrnGuard decides whether a value may be rendered. A value is safe when,
// ignoring whitespace and control characters, it starts with the trusted
// scheme, with anything but an ASCII letter, or with a letters-only scheme
// that is not directly followed by ':' or '-'.
type UrnGuard struct {
	safe        *regexp.Regexp
	placeholder string
	logger      *zap.SugaredLogger
}

func NewUrnGuard(trustedScheme, placeholder string, logger *zap.SugaredLogger) *UrnGuard {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	// (?i) folds U+017F and U+212A into [a-z], so a value starting with
	// either is checked as a letter scheme and may be rejected.
	return &UrnGuard{
		safe:        regexp.MustCompile(`(?i)^(?:(?:` + regexp.QuoteMeta(trustedScheme) + `):|[^a-z]|[a-z+.-]+(?:[^a-z+.:-]|$))`),
		placeholder: placeholder,
		logger:      logger,
	}
}

func (g *UrnGuard) IsSafe(raw string) bool {
	return g.safe.MatchString(attributeWhitespaces.ReplaceAllString(raw, ""))
}

// Sanitize returns raw unchanged when it is safe and the placeholder otherwise.
func (g *UrnGuard) Sanitize(raw string) string {
	if g.IsSafe(raw) {
		return raw
	}
	g.logger.Warnw("Replacing unsafe link value", "value", raw)
	return g.placeholder
}

var defaultGuard = NewUrnGuard(DefaultTrustedScheme, DefaultPlaceholder, nil)

// EnsureSafeUrn sanitizes raw against the default trusted scheme.
func EnsureSafeUrn(raw string) string {
	return defaultGuard.Sanitize(raw)
}
