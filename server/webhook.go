package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/vibpath/vibot/pkg/line"
)

// concurrent event dispatches per webhook delivery
const maxEventWorkers = 4

// webhookHandler receives LINE webhook deliveries. The signature is checked
// against the raw body before anything is parsed; accepted deliveries always
// answer 200 "OK", per-event failures are logged and not surfaced to LINE.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		renderError(w, r, errors.New("can't read request body"), http.StatusBadRequest)
		return
	}

	secret := s.config.GetLineConfig().ChannelSecret
	events, err := line.ParseWebhook(secret, r.Header.Get(line.SignatureHeader), body)
	if err != nil {
		lgr.Printf("[WARN] webhook rejected: %v", err)
		if errors.Is(err, line.ErrInvalidSignature) {
			renderError(w, r, errors.New("invalid signature"), http.StatusBadRequest)
			return
		}
		renderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxEventWorkers)

	for _, ev := range events {
		g.Go(func() error {
			if err := s.events.HandleEvent(ctx, ev); err != nil {
				lgr.Printf("[ERROR] %s event from %s failed: %v", ev.Type, ev.Source.UserID, err)
			}
			return nil
		})
	}
	_ = g.Wait() // event errors are logged, delivery is still acknowledged

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "OK")
}

// callbackHandler accepts callbacks from other web services, logs them and
// acknowledges without processing
func (s *Server) callbackHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		renderError(w, r, errors.New("can't read request body"), http.StatusBadRequest)
		return
	}

	lgr.Printf("[INFO] callback from %q: %s", r.UserAgent(), string(body))
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "received"})
}

// callbackInfoHandler describes the callback endpoint
func (s *Server) callbackInfoHandler(w http.ResponseWriter, r *http.Request) {
	info := map[string]string{
		"message": "generic callback endpoint",
		"usage":   "POST to this endpoint for web service callbacks",
		"url":     "/callback",
	}
	renderJSON(w, r, http.StatusOK, info)
}
