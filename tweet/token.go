package tweet

import (
	"regexp"
	"sort"
)

// Category is a kind of recognized token.
type Category int

const (
	Link Category = iota
	Mention
	Hashtag
)

// Categories in priority order. Earlier categories win on overlap.
var Categories = []Category{Link, Mention, Hashtag}

var (
	linksRe    = regexp.MustCompile(`https?://(?:[-\w.]+)+(?::\d+)?(?:/(?:[\w/_.]*(?:\?\S+)?)?)?`)
	mentionsRe = regexp.MustCompile(`@[A-Za-z0-9_]*\b`)
	hashtagsRe = regexp.MustCompile(`#\w+`)
)

func (c Category) String() string {
	switch c {
	case Link:
		return "link"
	case Mention:
		return "mention"
	case Hashtag:
		return "hashtag"
	}
	return "unknown"
}

// ClassSuffix is appended to the class prefix to form the class attribute.
func (c Category) ClassSuffix() string { return "-" + c.String() }

func (c Category) pattern() *regexp.Regexp {
	switch c {
	case Link:
		return linksRe
	case Mention:
		return mentionsRe
	case Hashtag:
		return hashtagsRe
	}
	return nil
}

// Token is a recognized substring of the input. Start and End are byte
// offsets, so Text == input[Start:End].
type Token struct {
	Category Category
	Text     string
	Start    int
	End      int
}

// Tokens returns the non-overlapping tokens of text, ordered by position.
// Links are found first. Mentions are then looked up only in the gaps
// between links, and hashtags in the gaps between links and mentions.
func Tokens(text string) []Token {
	var tokens []Token
	for _, cat := range Categories {
		var found []Token
		prev := 0
		for _, tok := range tokens {
			found = append(found, scan(cat, text, prev, tok.Start)...)
			prev = tok.End
		}
		found = append(found, scan(cat, text, prev, len(text))...)

		tokens = append(tokens, found...)
		sort.Slice(tokens, func(i, j int) bool { return tokens[i].Start < tokens[j].Start })
	}
	return tokens
}

// scan finds tokens of cat in text[start:end]. The gap end acts as the end
// of text for the pattern.
func scan(cat Category, text string, start, end int) []Token {
	if start >= end {
		return nil
	}
	var tokens []Token
	for _, loc := range cat.pattern().FindAllStringIndex(text[start:end], -1) {
		tokens = append(tokens, Token{
			Category: cat,
			Text:     text[start+loc[0] : start+loc[1]],
			Start:    start + loc[0],
			End:      start + loc[1],
		})
	}
	return tokens
}
