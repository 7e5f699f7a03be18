package handlers

import (
	"net/http"
	"strings"
)

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness. HEAD gets the same status without a body so
// load balancers can poll it cheaply.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead}, ", "))
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
}
