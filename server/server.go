package server

import (
	"net/http"
	"time"

	"github.com/FreeFeed/tweetformat/tweet"
	"github.com/davidmz/debug-log"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// Annotator is the part of the annotation service used by the HTTP API.
type Annotator interface {
	Annotate(text, prefix string) (string, error)
	Tokens(text string) []tweet.Token
}

type formatRequest struct {
	Text   string `json:"text"`
	Prefix string `json:"prefix"`
}

type tokenView struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

type formatResponse struct {
	HTML   string      `json:"html"`
	Tokens []tokenView `json:"tokens"`
}

type handler struct {
	app Annotator
	log debug.Logger
}

// New returns the HTTP handler of the API.
func New(app Annotator, log debug.Logger) http.Handler {
	h := &handler{app: app, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	r.Use(middleware.Heartbeat("/health"))
	r.Post("/format", h.format)

	return r
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

func (h *handler) format(w http.ResponseWriter, r *http.Request) {
	req := formatRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": err.Error()})
		return
	}

	html, err := h.app.Annotate(req.Text, req.Prefix)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, render.M{"error": err.Error()})
		return
	}

	resp := formatResponse{HTML: html, Tokens: []tokenView{}}
	for _, tok := range h.app.Tokens(req.Text) {
		resp.Tokens = append(resp.Tokens, tokenView{
			Category: tok.Category.String(),
			Text:     tok.Text,
			Start:    tok.Start,
			End:      tok.End,
		})
	}

	render.JSON(w, r, resp)
}
