package highlight

// Default markers placed around each highlighted match.
const (
	DefaultOpen  = "<b>"
	DefaultClose = "</b>"
)

type options struct {
	open  string
	close string
}

// Option configures [Highlight] and [HighlightSubmatch].
type Option func(*options)

// WithMarkers replaces the opening and closing markers. Empty markers are
// allowed.
func WithMarkers(open, close string) Option {
	return func(o *options) {
		o.open = open
		o.close = close
	}
}

func newOptions(opts []Option) options {
	o := options{open: DefaultOpen, close: DefaultClose}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
