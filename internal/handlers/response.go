package handlers

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope every endpoint returns. Business-rule failures
// (duplicate email, bad password, rejected fields) ride in this envelope with
// Success=false; infrastructure faults bypass it and surface as bare HTTP
// errors instead.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Success: false, Message: message})
}
