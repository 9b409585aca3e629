// Package server exposes a built chain over HTTP.
package server

import (
	"fmt"
	"net/http"
	"os"

	log "github.com/activeshadow/libminimega/minilog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/tomoris/markovwriter/markov"
)

// Server answers generation and lookup requests against one chain. The
// chain is never written after Build, so handlers may run concurrently.
type Server struct {
	chain     *markov.Chain
	seed      int64
	lineWidth int
}

// New returns a Server. seed is used when a request does not carry one.
func New(chain *markov.Chain, seed int64, lineWidth int) *Server {
	return &Server{
		chain:     chain,
		seed:      seed,
		lineWidth: lineWidth,
	}
}

// Router returns the routes without request logging.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/generate/", s.GenerateHandler)
	r.HandleFunc("/suffixes/", s.SuffixesHandler)
	r.HandleFunc("/stats/", s.StatsHandler).Methods(http.MethodGet)
	r.HandleFunc("/ping/", PingHandler).Methods(http.MethodGet)
	return r
}

func (s *Server) ListenAndServe(host string, port int) error {
	// Setup host:port to listen on
	listenOn := fmt.Sprintf("%s:%d", host, port)

	// Set up logging
	loggedRoute := handlers.LoggingHandler(os.Stderr, s.Router())

	log.Info("Starting server on %s", listenOn)
	return http.ListenAndServe(listenOn, loggedRoute)
}
