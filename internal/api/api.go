// Package api exposes the wordfix operations over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"wordfix/internal/wordfix"
)

const (
	RequestIDHeader = "X-Request-ID"

	defaultSuggestions = 5
	maxBody            = 1 << 20
)

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Original string `json:"original"`
	Result   string `json:"result"`
	Mode     string `json:"mode"`
}

type wordRequest struct {
	Word  string `json:"word"`
	Limit int    `json:"limit,omitempty"`
}

// NewHandler routes every endpoint to svc.
func NewHandler(svc *wordfix.Service) http.Handler {
	mux := http.NewServeMux()
	for _, mode := range wordfix.Modes {
		mux.HandleFunc("/api/v1/"+string(mode), textHandler(svc, mode))
	}

	mux.HandleFunc("/api/v1/suggest", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req wordRequest
		if err := decode(w, r, &req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		n := req.Limit
		if n <= 0 {
			n = defaultSuggestions
		}
		writeJSON(w, http.StatusOK, svc.Corrector().Suggest(strings.TrimSpace(req.Word), n))
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req wordRequest
		if err := decode(w, r, &req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if err := svc.AddCustomWord(r.Context(), req.Word); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		err := svc.RemoveCustomWord(r.Context(), word)
		switch {
		case errors.Is(err, wordfix.ErrEmptyWord):
			writeError(w, http.StatusBadRequest, err.Error())
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		}
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"words":  svc.Corrector().WordCount(),
		})
	})

	return withRequestID(mux)
}

func textHandler(svc *wordfix.Service, mode wordfix.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req textRequest
		if err := decode(w, r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		res, err := svc.Model().Apply(mode, req.Text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, textResponse{Original: req.Text, Result: res, Mode: string(mode)})
	}
}

// withRequestID tags each response with a fresh ULID and logs the request.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		w.Header().Set(RequestIDHeader, id)
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
