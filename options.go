package pathedit

// DefaultDelimiter separates path segments unless WithDelimiter says otherwise.
const DefaultDelimiter = "/"

type options struct {
	delimiter string
	prune     bool
}

// Option tunes Get, Set, Delete and JSONPointer.
type Option func(*options)

// WithDelimiter sets the string used to split paths. An empty delimiter is ignored.
func WithDelimiter(d string) Option {
	return func(o *options) {
		if d != "" {
			o.delimiter = d
		}
	}
}

// WithPrune controls whether Delete removes ancestor mappings left empty by the deletion.
// Pruning is on by default.
func WithPrune(prune bool) Option {
	return func(o *options) {
		o.prune = prune
	}
}

func newOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter, prune: true}
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}
	return o
}
