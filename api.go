package main

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/peninsulatransit/caltraind/types"
)

// statusHolder keeps the latest snapshot for the unix socket API
type statusHolder struct {
	mu      sync.RWMutex
	status  *types.Status
	updated time.Time
}

// HandleStatus stores a new snapshot, replacing the previous one whole
func (h *statusHolder) HandleStatus(status *types.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
	h.updated = time.Now()
}

type statusResponse struct {
	Updated    time.Time             `json:"updated"`
	Northbound []types.IncomingTrain `json:"northbound"`
	Southbound []types.IncomingTrain `json:"southbound"`
}

func (h *statusHolder) serveStatus(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.status == nil {
		http.Error(w, "no snapshot retrieved yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statusResponse{
		Updated:    h.updated,
		Northbound: h.status.Northbound,
		Southbound: h.status.Southbound,
	})
}

func (h *statusHolder) serveDirection(w http.ResponseWriter, r *http.Request) {
	direction, err := types.ParseDirection(mux.Vars(r)["direction"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.status == nil {
		http.Error(w, "no snapshot retrieved yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.status.Trains(direction))
}

func (h *statusHolder) router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/status", h.serveStatus).Methods(http.MethodGet)
	router.HandleFunc("/status/{direction}", h.serveDirection).Methods(http.MethodGet)
	return router
}

// APIServer serves the latest snapshot over a unix socket in the runtime
// directory, so shell tooling can ask the daemon what it last saw
func APIServer(socket string, holder *statusHolder, log *log.Logger) error {
	// a previous instance may have left its socket behind
	_ = os.Remove(socket)

	listener, err := net.Listen("unix", socket)
	if err != nil {
		return err
	}
	log.Println("API listening on", socket)

	server := &http.Server{Handler: holder.router()}
	return server.Serve(listener)
}
