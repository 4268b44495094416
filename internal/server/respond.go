package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
)

func sendJSON(w http.ResponseWriter, status int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	return err
}

func sendJSONOrLog(w http.ResponseWriter, logger *log.Logger, status int, v any) {
	if err := sendJSON(w, status, v); err != nil {
		logger.Error("unable to send response", "error", err)
	}
}

// failure is the body of every unsuccessful API response.
type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func sendErrorOrLog(w http.ResponseWriter, logger *log.Logger, status int, err error) {
	sendJSONOrLog(w, logger, status, failure{Message: err.Error()})
}
