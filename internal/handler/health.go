package handler

import (
	"encoding/json"
	"net/http"
)

// HandleHealthz is the liveness probe. It answers without touching the
// database or the auth stack.
// GET /healthz
// Response: {"status":"ok"}
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
