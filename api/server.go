package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/matt-g-everett/scrolltx/keyframe"
	"github.com/matt-g-everett/scrolltx/stream"
)

// Source supplies frames to the API.
type Source interface {
	FrameAt(p float64) *stream.Frame
	Latest() *stream.Frame
	SetProgress(p float64)
	Tracks() keyframe.Set
}

type Api struct {
	source Source
}

func NewApi(source Source) *Api {
	a := new(Api)
	a.source = source
	return a
}

// Handler routes the API endpoints.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame", a.handleFrame)
	mux.HandleFunc("/progress", a.handleProgress)
	mux.HandleFunc("/tracks", a.handleTracks)
	return mux
}

func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query().Get("p")
	if q == "" {
		writeJSON(w, a.source.Latest())
		return
	}

	p, err := stream.ParseProgress([]byte(q))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, a.source.FrameAt(p))
}

func (a *Api) handleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := stream.ParseProgress(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.source.SetProgress(p)
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) handleTracks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tracks := a.source.Tracks()
	out := make(map[string]*string, len(tracks))
	for _, name := range tracks.Names() {
		if tracks[name] == nil {
			out[name] = nil
			continue
		}
		def := tracks[name].String()
		out[name] = &def
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encoding response: %v", err)
	}
}
