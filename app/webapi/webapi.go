// Package webapi provides a web API for the moderation service: message
// checks, sample management and unban, mirroring the admin chat commands.
package webapi

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/tg-doorman/lib/checker"
)

//go:generate moq --out mocks/detector.go --pkg mocks --with-resets --skip-ensure . Detector
//go:generate moq --out mocks/spam_filter.go --pkg mocks --with-resets --skip-ensure . SpamFilter
//go:generate moq --out mocks/trust.go --pkg mocks --with-resets --skip-ensure . Trust
//go:generate moq --out mocks/bad_content.go --pkg mocks --with-resets --skip-ensure . BadContent

// Server is a web API server.
type Server struct {
	Config
}

// Config defines server parameters
type Config struct {
	Version    string     // version to show in /ping
	ListenAddr string     // listen address
	Detector   Detector   // spam detector
	SpamFilter SpamFilter // sample management (bot filter)
	Trust      Trust      // approved users registry
	BadContent BadContent // bad content registry, optional
	AuthPasswd string     // basic auth password for user "tg-doorman"
	Dbg        bool       // debug mode
}

// Detector is a text checks interface.
type Detector interface {
	Classify(text string) (spam bool, score float64)
	TooManyEmojis(text string) bool
	StopWords(text string) (found bool, match string)
}

// SpamFilter is a sample management interface, implemented by the bot filter.
type SpamFilter interface {
	AddSpam(msg string) error
	AddHam(msg string) error
	ReloadSamples() (err error)
	DynamicSamples() (spam, ham []string, err error)
	RemoveDynamicSpamSample(sample string) (int, error)
}

// Trust is an approved users registry interface.
type Trust interface {
	Unban(ctx context.Context, userID int64) error
}

// BadContent is a bad content registry interface, optional.
type BadContent interface {
	Remove(ctx context.Context, text string) error
}

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	return &Server{Config: config}
}

// Run starts server and accepts requests checking for spam messages.
func (s *Server) Run(ctx context.Context) error {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.Throttle(1000))
	router.Use(rest.AppInfo("tg-doorman", "umputun", s.Version), rest.Ping)
	router.Use(tollbooth.HTTPMiddleware(tollbooth.NewLimiter(50, nil)))
	router.Use(rest.SizeLimit(1024 * 1024)) // 1M max request size

	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server")
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}
	router.Use(s.authMiddleware(rest.BasicAuthWithUserPasswd("tg-doorman", s.AuthPasswd)))

	s.routes(router)

	srv := &http.Server{Addr: s.ListenAddr, Handler: router, ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) routes(router *routegroup.Bundle) {
	router.HandleFunc("POST /check", s.checkHandler) // check a message for spam

	router.HandleFunc("POST /samples/spam", s.updateSampleHandler(s.SpamFilter.AddSpam)) // add spam sample
	router.HandleFunc("POST /samples/ham", s.updateSampleHandler(s.SpamFilter.AddHam))   // add ham sample
	router.HandleFunc("DELETE /samples/spam", s.deleteSampleHandler)                     // delete a dynamic spam sample
	router.HandleFunc("GET /samples", s.getDynamicSamplesHandler)                        // get dynamic samples
	router.HandleFunc("PUT /samples", s.reloadDynamicSamplesHandler)                     // reload samples from files

	router.HandleFunc("POST /unban/{id}", s.unbanHandler) // lift a ban, same as the admin chat /unban
}

// checkHandler handles POST /check request.
// it gets the message text from the request body and returns the full check breakdown.
func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		log.Printf("[WARN] can't decode request: %v", err)
		return
	}

	spam, score := s.Detector.Classify(req.Msg)
	stopFound, stopMatch := s.Detector.StopWords(req.Msg)
	normalized := checker.Normalize(req.Msg)

	rest.RenderJSON(w, rest.JSON{
		"spam": spam || stopFound || s.Detector.TooManyEmojis(req.Msg),
		"checks": rest.JSON{
			"classifier":      rest.JSON{"spam": spam, "score": score},
			"stop_words":      rest.JSON{"found": stopFound, "match": stopMatch},
			"too_many_emojis": s.Detector.TooManyEmojis(req.Msg),
			"lookalike_words": checker.LookalikeWords(normalized),
			"normalized":      normalized,
		},
	})
}

// getDynamicSamplesHandler handles GET /samples request. It returns dynamic samples both for spam and ham.
func (s *Server) getDynamicSamplesHandler(w http.ResponseWriter, _ *http.Request) {
	spam, ham, err := s.SpamFilter.DynamicSamples()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't get dynamic samples", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"spam": spam, "ham": ham})
}

// updateSampleHandler handles POST /samples/spam|ham requests
func (s *Server) updateSampleHandler(updFn func(msg string) error) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Msg string `json:"msg"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
			return
		}
		if strings.TrimSpace(req.Msg) == "" {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": "msg is required"})
			return
		}

		if err := updFn(req.Msg); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			rest.RenderJSON(w, rest.JSON{"error": "can't update samples", "details": err.Error()})
			return
		}
		rest.RenderJSON(w, rest.JSON{"updated": true, "msg": req.Msg})
	}
}

// deleteSampleHandler handles DELETE /samples/spam request. It removes a dynamic
// spam sample and clears the matching bad content record if the registry is set.
func (s *Server) deleteSampleHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		return
	}

	count, err := s.SpamFilter.RemoveDynamicSpamSample(req.Msg)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't delete sample", "details": err.Error()})
		return
	}

	if s.BadContent != nil {
		if err := s.BadContent.Remove(r.Context(), req.Msg); err != nil {
			log.Printf("[DEBUG] can't remove bad content record: %v", err)
		}
	}
	rest.RenderJSON(w, rest.JSON{"deleted": true, "msg": req.Msg, "count": count})
}

// reloadDynamicSamplesHandler handles PUT /samples request. It reloads samples from files
func (s *Server) reloadDynamicSamplesHandler(w http.ResponseWriter, _ *http.Request) {
	if err := s.SpamFilter.ReloadSamples(); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't reload samples", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"reloaded": true})
}

// unbanHandler handles POST /unban/{id} request. It lifts the platform-level
// record for the user, same semantics as the admin chat /unban command.
func (s *Server) unbanHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid user id", "details": err.Error()})
		return
	}

	if err := s.Trust.Unban(r.Context(), userID); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't unban user", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"unbanned": true, "user_id": userID})
}

func (s *Server) authMiddleware(mw func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	if s.AuthPasswd == "" {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return func(next http.Handler) http.Handler {
		return mw(next)
	}
}

// GenerateRandomPassword generates a random password of a given length
func GenerateRandomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+"

	var password strings.Builder
	charsetSize := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		randomNumber, err := rand.Int(rand.Reader, charsetSize)
		if err != nil {
			return "", err
		}

		password.WriteByte(charset[randomNumber.Int64()])
	}

	return password.String(), nil
}
