package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/FreeFeed/tweetformat/app"
	"github.com/FreeFeed/tweetformat/bot"
	"github.com/FreeFeed/tweetformat/server"
	"github.com/FreeFeed/tweetformat/tweet"
	"github.com/davidmz/debug-log"
	"github.com/davidmz/mustbe"
	tgbotapi "github.com/davidmz/telegram-bot-api"
	flag "github.com/spf13/pflag"
)

const (
	shutdownTimeout = 10 * time.Second
)

// service is a long-running part of the program.
type service interface {
	Start() error
	Close()
}

func main() {
	defer mustbe.Catched(func(err error) { log.Fatalln("Fatal error:", err) })

	var (
		prefix       string
		profileURL   string
		legacy       bool
		useEmoji     bool
		showStats    bool
		listenAddr   string
		tgToken      string
		cacheSize    int
		debugSources string
		showHelp     bool
	)

	flag.StringVarP(&prefix, "prefix", "p", tweet.DefaultPrefix, "CSS class prefix")
	flag.StringVar(&profileURL, "profile-url", tweet.DefaultProfileURL, "Base URL of mention links")
	flag.BoolVar(&legacy, "legacy", false, "Use the original substring replacement algorithm")
	flag.BoolVar(&useEmoji, "emoji", false, "Expand :shortcode: emoji before formatting")
	flag.BoolVar(&showStats, "stats", false, "Print token counts to stderr (counted without --legacy duplicates)")
	flag.StringVar(&listenAddr, "listen", "", "Serve the HTTP API on this address (e.g. :8080)")
	flag.StringVar(&tgToken, "token", "", "Run the Telegram bot with this token")
	flag.IntVar(&cacheSize, "cache", 1000, "Size of the results cache")
	flag.StringVar(&debugSources, "debug", "", "Debug sources, set to '*' to see all messages")
	flag.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	flag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [text...]\n\nFlags:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(0)
	}

	if debugSources != "" {
		os.Setenv("DEBUG", debugSources)
	}

	debugLogger := debug.NewLogger("tweetformat")
	errorLogger := debug.NewLogger("tweetformat:error")

	opts := []tweet.Option{tweet.WithPrefix(prefix), tweet.WithProfileURL(profileURL)}
	if legacy {
		opts = append(opts, tweet.Legacy())
	}

	a := &app.App{
		Options:     opts,
		CacheSize:   cacheSize,
		Emoji:       useEmoji,
		DebugLogger: debugLogger,
		ErrorLogger: errorLogger,
	}

	if listenAddr == "" && tgToken == "" {
		mustbe.OK(annotateInput(a, flag.Args(), os.Stdin, os.Stdout, statsWriter(showStats)))
		return
	}

	var services []service

	if listenAddr != "" {
		services = append(services, &httpService{
			Server: &http.Server{
				Addr:     listenAddr,
				Handler:  server.New(a, debugLogger.Fork("tweetformat:http")),
				ErrorLog: log.New(&logWriter{errorLogger}, "", 0),
			},
			log: debugLogger,
		})
	}

	if tgToken != "" {
		tgbotapi.SetLogger(debug.NewLogger("tweetformat:tgbot"))

		debugLogger.Println("Starting BotAPI")
		tgBot := mustbe.OKVal(tgbotapi.NewBotAPI(tgToken)).(*tgbotapi.BotAPI)
		debugLogger.Printf("Bot authorized on account %s", tgBot.Self.UserName)

		b := &bot.Bot{
			App:         a,
			TgAPI:       tgBot,
			DebugLogger: debugLogger.Fork("tweetformat:bot"),
			ErrorLogger: errorLogger,
		}
		b.Init()
		services = append(services, b)
	}

	mustbe.OK(run(services, debugLogger))

	debugLogger.Println("Bye!")
}

// run starts all services and waits for them. The first failed service
// stops the others.
func run(services []service, log debug.Logger) error {
	var (
		wg        sync.WaitGroup
		closeOnce sync.Once
		errLock   sync.Mutex
		firstErr  error
	)

	closeAll := func() {
		closeOnce.Do(func() {
			for _, s := range services {
				s.Close()
			}
		})
	}

	handleStopSignals(closeAll, log)

	for _, s := range services {
		wg.Add(1)
		go func(s service) {
			defer wg.Done()
			if err := s.Start(); err != nil {
				errLock.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errLock.Unlock()
				closeAll()
			}
		}(s)
	}

	wg.Wait()
	return firstErr
}

type httpService struct {
	*http.Server
	log debug.Logger
}

func (s *httpService) Start() error {
	s.log.Println("▶️ Starting HTTP API on", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("cannot serve HTTP API: %w", err)
	}
	return nil
}

func (s *httpService) Close() {
	s.log.Println("⏹️ Stopping HTTP API")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		s.log.Println("HTTP API shutdown error:", err)
	}
}

func handleStopSignals(cancel func(), log debug.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-c
		log.Println(s, "signal received, waiting for services to exit")
		time.AfterFunc(shutdownTimeout, func() {
			log.Println("shutdown timeout, exiting forcefully")
			os.Exit(1)
		})
		cancel()
	}()
}
