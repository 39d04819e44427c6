// Package tweet wraps links, @-mentions and #-hashtags of short messages
// into HTML markup.
package tweet

import "strings"

// Annotator formats messages. It holds no mutable state and is safe for
// concurrent use.
type Annotator struct {
	prefix     string
	profileURL string
	legacy     bool
}

// New creates an Annotator.
func New(opts ...Option) *Annotator {
	a := &Annotator{
		prefix:     DefaultPrefix,
		profileURL: DefaultProfileURL,
	}
	Options(opts).apply(a)
	return a
}

// Annotate formats text with the given class prefix ("tf" if empty).
func Annotate(text, classPrefix string) string {
	return New(WithPrefix(classPrefix)).Annotate(text)
}

// Prefix returns the class prefix in use.
func (a *Annotator) Prefix() string { return a.prefix }

// Annotate returns text with every token wrapped in markup. The
// surrounding text is not escaped.
func (a *Annotator) Annotate(text string) string {
	if a.legacy {
		return a.annotateLegacy(text)
	}

	tokens := Tokens(text)
	if len(tokens) == 0 {
		return text
	}

	var result strings.Builder
	prev := 0
	for _, tok := range tokens {
		result.WriteString(text[prev:tok.Start])
		result.WriteString(render(tok.Category, tok.Text, a.prefix, a.profileURL))
		prev = tok.End
	}
	result.WriteString(text[prev:])
	return result.String()
}

func (a *Annotator) annotateLegacy(text string) string {
	for _, cat := range Categories {
		// Matches come from this pass's input, replacements go to the
		// first remaining occurrence in the working string.
		for _, token := range cat.pattern().FindAllString(text, -1) {
			text = strings.Replace(text, token, render(cat, token, a.prefix, a.profileURL), 1)
		}
	}
	return text
}
