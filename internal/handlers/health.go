package handlers

import "net/http"

// Health reports liveness. No auth, no rate limit.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    "MindMosaic API is running!",
	})
}
