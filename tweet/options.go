package tweet

// Option allows to configure Annotator on create.
type Option interface {
	apply(*Annotator)
}

type optionFn func(*Annotator)

func (f optionFn) apply(a *Annotator) { f(a) }

// Options is a list of Option. It satisfies the Option interface itself.
type Options []Option

func (o Options) apply(a *Annotator) {
	for _, opt := range o {
		opt.apply(a)
	}
}

// WithPrefix sets the class prefix. An empty prefix keeps the default.
func WithPrefix(prefix string) Option {
	return optionFn(func(a *Annotator) {
		if prefix != "" {
			a.prefix = prefix
		}
	})
}

// WithProfileURL sets the base URL of mention links.
func WithProfileURL(base string) Option {
	return optionFn(func(a *Annotator) {
		if base != "" {
			a.profileURL = base
		}
	})
}

// Legacy switches the annotator to the substring replacement algorithm of
// the first TweetFormatter release. It replaces the first literal
// occurrence of every match, so repeated tokens and tokens found inside
// already inserted markup get wrapped more than once.
func Legacy() Option { return optionFn(func(a *Annotator) { a.legacy = true }) }
