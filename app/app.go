package app

import (
	"fmt"
	"sync"

	"github.com/FreeFeed/tweetformat/tweet"
	"github.com/bluele/gcache"
	"github.com/davidmz/debug-log"
	"github.com/enescakir/emoji"
)

const defaultCacheSize = 1000

// App is the annotation service shared by the CLI, the HTTP API and the bot.
type App struct {
	Options     []tweet.Option
	CacheSize   int
	Emoji       bool
	DebugLogger debug.Logger
	ErrorLogger debug.Logger

	initOnce sync.Once
	cache    gcache.Cache
}

type cacheKey struct {
	text   string
	prefix string
}

func (a *App) init() {
	a.initOnce.Do(func() {
		if a.DebugLogger == nil {
			a.DebugLogger = debug.NewLogger("tweetformat")
		}
		if a.ErrorLogger == nil {
			a.ErrorLogger = debug.NewLogger("tweetformat:error")
		}
		if a.CacheSize <= 0 {
			a.CacheSize = defaultCacheSize
		}
		a.cache = gcache.
			New(a.CacheSize).
			ARC().
			LoaderFunc(func(key interface{}) (interface{}, error) {
				k := key.(cacheKey)
				a.DebugLogger.Printf("Cache miss, annotating %d bytes", len(k.text))
				return a.annotator(k.prefix).Annotate(a.prepare(k.text)), nil
			}).
			Build()
	})
}

func (a *App) annotator(prefix string) *tweet.Annotator {
	opts := append(tweet.Options{}, a.Options...)
	return tweet.New(append(opts, tweet.WithPrefix(prefix))...)
}

// prepare expands emoji shortcodes when enabled
func (a *App) prepare(text string) string {
	if a.Emoji {
		return emoji.Parse(text)
	}
	return text
}

// Annotate returns the annotated text. An empty prefix means the prefix
// from Options or the default one. Results are cached.
func (a *App) Annotate(text, prefix string) (string, error) {
	a.init()

	v, err := a.cache.Get(cacheKey{text, prefix})
	if err != nil {
		a.ErrorLogger.Println("Cannot annotate text:", err)
		return "", fmt.Errorf("cannot annotate text: %w", err)
	}
	return v.(string), nil
}

// Tokens returns the tokens of text after emoji expansion. Offsets refer
// to the expanded text.
func (a *App) Tokens(text string) []tweet.Token {
	return tweet.Tokens(a.prepare(text))
}

// Stats counts tokens per category.
type Stats map[tweet.Category]int

// Stats always describes the position-tracked tokens of text. With the
// Legacy option the annotated output may wrap some tokens more than once.
func (a *App) Stats(text string) Stats {
	stats := make(Stats)
	for _, tok := range a.Tokens(text) {
		stats[tok.Category]++
	}
	return stats
}
