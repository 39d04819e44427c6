package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FreeFeed/tweetformat/app"
	"github.com/FreeFeed/tweetformat/tweet"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func statsWriter(enabled bool) io.Writer {
	if enabled {
		return os.Stderr
	}
	return nil
}

// annotateInput formats the arguments joined by spaces or, without
// arguments, every line of in. Token counts go to statsOut if it is not nil.
func annotateInput(a *app.App, args []string, in io.Reader, out, statsOut io.Writer) error {
	if len(args) > 0 {
		return annotateLine(a, strings.Join(args, " "), out, statsOut)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := annotateLine(a, scanner.Text(), out, statsOut); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}
	return nil
}

func annotateLine(a *app.App, text string, out, statsOut io.Writer) error {
	html, err := a.Annotate(text, "")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, html); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}

	if statsOut != nil {
		stats := a.Stats(text)
		p := message.NewPrinter(language.English)
		p.Fprintf(statsOut, "%d links, %d mentions, %d hashtags\n",
			stats[tweet.Link], stats[tweet.Mention], stats[tweet.Hashtag])
	}
	return nil
}
