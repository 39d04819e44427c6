package bot

import (
	"regexp"
	"strings"

	"github.com/FreeFeed/tweetformat/tweet"
	tg "github.com/davidmz/telegram-bot-api"
	"github.com/enescakir/emoji"
	"golang.org/x/text/message"
)

var prefixRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,31}$`)

// Telegram understands only these entities
var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
)

func (b *Bot) reply(in incoming) *tg.MessageConfig {
	p := message.NewPrinter(in.Language)

	var text string
	switch in.Command {
	case "":
		return b.annotated(in)
	case "start", "help":
		prefix := b.prefix(in.ChatID)
		if prefix == "" {
			prefix = tweet.DefaultPrefix
		}
		text = p.Sprintf(":wave: Send me a message and I will show it with links, mentions and hashtags marked up.\nUse /prefix NAME to change the class prefix (now %q), /prefix without a name resets it.", prefix)
	case "prefix":
		prefix := strings.TrimSpace(in.Args)
		if prefix != "" && !prefixRe.MatchString(prefix) {
			text = p.Sprintf(":warning: Prefix must start with a letter and contain only letters, digits, '-' and '_'.")
			break
		}
		if err := b.setPrefix(in.ChatID, prefix); err != nil {
			b.ErrorLogger.Println("Cannot save prefix:", err)
			text = internalErrorMsg
			break
		}
		if prefix == "" {
			text = p.Sprintf(":white_check_mark: Class prefix is reset to %q.", tweet.DefaultPrefix)
		} else {
			text = p.Sprintf(":white_check_mark: Class prefix is set to %q.", prefix)
		}
	default:
		text = p.Sprintf(":shrug: Unknown command")
	}

	return b.newRawHTMLMessage(in, htmlEscaper.Replace(emoji.Parse(text)))
}

func (b *Bot) annotated(in incoming) *tg.MessageConfig {
	if strings.TrimSpace(in.Text) == "" {
		p := message.NewPrinter(in.Language)
		return b.newRawHTMLMessage(in, emoji.Parse(p.Sprintf(":shrug: Can not format a message without a text")))
	}

	html, err := b.App.Annotate(in.Text, b.prefix(in.ChatID))
	if err != nil {
		b.ErrorLogger.Printf("Cannot annotate message in chat %d: %v", in.ChatID, err)
		return b.newRawHTMLMessage(in, internalErrorMsg)
	}

	return b.newRawHTMLMessage(in, "<pre>"+htmlEscaper.Replace(html)+"</pre>")
}

func (b *Bot) newRawHTMLMessage(in incoming, html string) *tg.MessageConfig {
	msg := tg.NewMessage(in.ChatID, html)
	msg.ParseMode = "HTML"
	msg.DisableWebPagePreview = true
	msg.ReplyToMessageID = in.MessageID
	return &msg
}
