package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/tomoris/markovwriter/markov"
	"github.com/tomoris/markovwriter/mtrand"
)

type GeneratePost struct {
	Words int   `json:"words"`
	Seed  int64 `json:"seed"`
}

type SuffixesPost struct {
	Prefix []string `json:"prefix"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	msg, _ := json.Marshal(body)
	w.Write(msg)
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"status": "this method is not allowed",
		})
		return false
	}

	b, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}

	if err := json.Unmarshal(b, v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	requestData := GeneratePost{Seed: s.seed}
	if !readJSON(w, r, &requestData) {
		return
	}

	words, err := s.chain.Generate(mtrand.New(requestData.Seed), requestData.Words)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Cause(err) == markov.ErrInvalidConfig {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	var text strings.Builder
	if err := markov.FormatLines(&text, words, s.lineWidth); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"words": words,
		"text":  text.String(),
	})
}

func (s *Server) SuffixesHandler(w http.ResponseWriter, r *http.Request) {
	requestData := SuffixesPost{}
	if !readJSON(w, r, &requestData) {
		return
	}

	suffixes, err := s.chain.Suffixes(requestData.Prefix)
	switch errors.Cause(err) {
	case nil:
	case markov.ErrKeyNotFound:
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"prefix": requestData.Prefix,
			"status": "no value found",
		})
		return
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusFound, map[string]interface{}{
		"prefix":   requestData.Prefix,
		"suffixes": suffixes,
	})
}

func (s *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.chain.Stats())
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "pong",
	})
}
