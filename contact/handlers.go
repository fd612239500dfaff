package contact

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const sendMessageFailedMsg = "Failed to send message"

type HTTPHandler struct {
	s Service
}

func NewHTTPHandler(s Service) *HTTPHandler {
	return &HTTPHandler{s}
}

// CreateHandler handles POST requests from the contact form. Malformed bodies
// and missing required fields are rejected before any store call; every
// backend fault collapses to one opaque service error.
func (hh *HTTPHandler) CreateHandler(w http.ResponseWriter, req *http.Request) {
	w.Header().Add("Content-Type", "application/json")

	var payload ContactMessageCreate
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(&payload); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := payload.validate(); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := hh.s.Create(req.Context(), *payload.Name, *payload.Email, *payload.Message)
	if err != nil {
		log.WithError(err).Error("Error saving contact message")
		writeJSONError(w, sendMessageFailedMsg, http.StatusInternalServerError)
		return
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(record); err != nil {
		log.WithError(err).Error("Error encoding contact message response")
		writeJSONError(w, sendMessageFailedMsg, http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, errorMsg string, statusCode int) {
	w.WriteHeader(statusCode)
	fmt.Fprintln(w, fmt.Sprintf("{\"detail\": \"%s\"}", errorMsg))
}
