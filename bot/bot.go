package bot

import (
	"errors"
	"sync"

	"github.com/bluele/gcache"
	"github.com/davidmz/debug-log"
	tg "github.com/davidmz/telegram-bot-api"
	"github.com/enescakir/emoji"
	"golang.org/x/text/language"
)

const prefixCacheSize = 10000

var internalErrorMsg = emoji.Parse(":stop_sign: An internal error occurred during your request. If it repeats, please contact support.")

// ChatID is a type of Telegram chat ID
type ChatID = int64

// Annotator is the part of the annotation service used by the bot.
type Annotator interface {
	Annotate(text, prefix string) (string, error)
}

// TgAPI is the part of the Telegram Bot API used by the bot.
type TgAPI interface {
	Send(tg.Chattable) (tg.Message, error)
	GetUpdatesChan(tg.UpdateConfig) (tg.UpdatesChannel, error)
}

type Bot struct {
	App         Annotator
	TgAPI       TgAPI
	DebugLogger debug.Logger
	ErrorLogger debug.Logger

	updChannel tg.UpdatesChannel
	prefixes   gcache.Cache
	waitGroup  sync.WaitGroup
	closeChan  chan struct{}
}

// incoming is the part of a Telegram message the bot reacts to.
type incoming struct {
	ChatID    ChatID
	MessageID int
	Text      string
	Command   string
	Args      string
	Language  language.Tag
}

// Init prepares internal structures. Start calls it if it wasn't called before.
func (b *Bot) Init() {
	b.prefixes = gcache.New(prefixCacheSize).LRU().Build()
	b.closeChan = make(chan struct{})
}

// Start starts the Telegram listener. This function doesnt return until
// the Close is called.
func (b *Bot) Start() (err error) {
	if b.closeChan == nil {
		b.Init()
	}

	b.updChannel, err = b.TgAPI.GetUpdatesChan(tg.UpdateConfig{Offset: 0, Timeout: 60})
	if err != nil {
		return
	}

	b.waitGroup.Add(1)
	b.DebugLogger.Println("▶️ Starting Telegram listener")
	go b.listenTelegram()

	b.waitGroup.Wait()
	return nil
}

func (b *Bot) Close() {
	close(b.closeChan)
}

func (b *Bot) listenTelegram() {
	defer b.waitGroup.Done()
	defer b.DebugLogger.Println("⏹️ Closing Telegram listener")
	for {
		select {
		case update, ok := <-b.updChannel:
			if !ok {
				b.DebugLogger.Println("Updates channel closed")
				return
			}
			b.waitGroup.Add(1)
			go b.handleTgUpdate(update)
		case <-b.closeChan:
			b.DebugLogger.Println("Stop Telegram listener")
			return
		}
	}
}

func (b *Bot) handleTgUpdate(update tg.Update) {
	defer b.waitGroup.Done()

	msg := update.Message
	if msg == nil {
		b.DebugLogger.Printf("Skipping update #%d without message", update.UpdateID)
		return
	}

	in := incoming{
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
		Text:      msg.Text,
		Command:   msg.Command(),
		Args:      msg.CommandArguments(),
	}
	if msg.From != nil {
		in.Language = language.Make(msg.From.LanguageCode)
	}

	b.DebugLogger.Printf("Handling update #%d in chat %d", update.UpdateID, in.ChatID)
	if _, err := b.TgAPI.Send(b.reply(in)); err != nil {
		b.ErrorLogger.Printf("Cannot send reply to chat %d: %v", in.ChatID, err)
	}
}

func (b *Bot) prefix(chatID ChatID) string {
	v, err := b.prefixes.Get(chatID)
	if errors.Is(err, gcache.KeyNotFoundError) {
		return ""
	} else if err != nil {
		b.ErrorLogger.Println("Cannot read prefix:", err)
		return ""
	}
	return v.(string)
}

func (b *Bot) setPrefix(chatID ChatID, prefix string) error {
	if prefix == "" {
		b.prefixes.Remove(chatID)
		return nil
	}
	return b.prefixes.Set(chatID, prefix)
}
