package tweet

import (
	"fmt"
	"strings"
)

// DefaultPrefix is the class prefix used when none is given.
const DefaultPrefix = "tf"

// DefaultProfileURL is the base of mention hrefs.
const DefaultProfileURL = "http://twitter.com/"

// Render returns the markup fragment for a single token.
func Render(tok Token, classPrefix string) string {
	return render(tok.Category, tok.Text, classPrefix, DefaultProfileURL)
}

func render(cat Category, text, classPrefix, profileURL string) string {
	if classPrefix == "" {
		classPrefix = DefaultPrefix
	}
	class := classPrefix + cat.ClassSuffix()

	switch cat {
	case Link:
		return fmt.Sprintf(`<a href="%s" class="%s">%s</a>`, text, class, stripScheme(text))
	case Mention:
		return fmt.Sprintf(`<a href="%s%s" class="%s">%s</a>`, profileURL, strings.TrimPrefix(text, "@"), class, text)
	case Hashtag:
		return fmt.Sprintf(`<span class="%s">%s</span>`, class, text)
	}
	return text
}

func stripScheme(link string) string {
	if s := strings.TrimPrefix(link, "https://"); s != link {
		return s
	}
	return strings.TrimPrefix(link, "http://")
}
