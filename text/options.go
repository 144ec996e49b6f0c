package text

// Option configures a Service.
type Option func(*config)

// config holds configuration for Service.
type config struct {
	regular     []string
	bold        []string
	pictograph  []string
	systemFonts bool
	cacheSize   int
}

// defaultConfig returns the default service configuration.
func defaultConfig() config {
	return config{
		systemFonts: true,
		cacheSize:   32,
	}
}

// WithFontPaths prepends font files tried for the regular weight.
func WithFontPaths(paths ...string) Option {
	return func(c *config) {
		c.regular = append(c.regular, paths...)
	}
}

// WithBoldPaths prepends font files tried for the bold weight.
func WithBoldPaths(paths ...string) Option {
	return func(c *config) {
		c.bold = append(c.bold, paths...)
	}
}

// WithPictographPaths prepends font files searched for pictograph glyphs.
// Every loadable file joins the fallback list, in order.
func WithPictographPaths(paths ...string) Option {
	return func(c *config) {
		c.pictograph = append(c.pictograph, paths...)
	}
}

// WithSystemFonts controls whether well-known system font locations are
// searched after the configured paths. Disabling it makes rendering
// reproducible across machines.
func WithSystemFonts(enabled bool) Option {
	return func(c *config) {
		c.systemFonts = enabled
	}
}

// WithCacheSize sets how many (size, weight) faces are kept open.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}
