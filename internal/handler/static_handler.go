package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
)

// StaticHandler serves the bundled frontend. Registered only outside
// development and testing deployments, where the frontend runs on its own
// dev server instead.
type StaticHandler struct {
	staticDir string
}

// NewStaticHandler creates a static handler rooted at the given directory.
func NewStaticHandler(staticDir string) *StaticHandler {
	return &StaticHandler{staticDir: staticDir}
}

// serveIndex serves the frontend entry page.
func (h *StaticHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	indexPath := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		http.Error(w, "frontend assets not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, indexPath)
}

// SetupStaticRoutes registers the frontend entry page and asset routes.
func (h *StaticHandler) SetupStaticRoutes(router *mux.Router, gate func(http.Handler) http.Handler) {
	index := http.Handler(http.HandlerFunc(h.serveIndex))
	if gate != nil {
		index = gate(index)
	}
	router.Handle("/", index).Methods("GET")

	fileServer := http.FileServer(http.Dir(h.staticDir))
	router.PathPrefix("/assets/").Handler(fileServer).Methods("GET")
}
