package stories

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	addStoryFailedMsg     = "Failed to add story"
	fetchStoriesFailedMsg = "Failed to fetch stories"
)

type HTTPHandler struct {
	s Service
}

func NewHTTPHandler(s Service) *HTTPHandler {
	return &HTTPHandler{s}
}

// CreateHandler handles POST requests for new stories. Malformed bodies and
// missing required fields are rejected with field-level detail before any
// store call; every backend fault collapses to one opaque service error.
func (hh *HTTPHandler) CreateHandler(w http.ResponseWriter, req *http.Request) {
	w.Header().Add("Content-Type", "application/json")

	var payload StoryCreate
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(&payload); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := payload.validate(); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := hh.s.Create(req.Context(), *payload.Author, *payload.Title, *payload.Story)
	if err != nil {
		log.WithError(err).Error("Error adding story")
		writeJSONError(w, addStoryFailedMsg, http.StatusInternalServerError)
		return
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(record); err != nil {
		log.WithError(err).Error("Error encoding story response")
		writeJSONError(w, addStoryFailedMsg, http.StatusInternalServerError)
	}
}

// ListHandler handles GET requests and returns every story, most recent first.
func (hh *HTTPHandler) ListHandler(w http.ResponseWriter, req *http.Request) {
	w.Header().Add("Content-Type", "application/json")

	records, err := hh.s.List(req.Context())
	if err != nil {
		log.WithError(err).Error("Error fetching stories")
		writeJSONError(w, fetchStoriesFailedMsg, http.StatusInternalServerError)
		return
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		log.WithError(err).Error("Error encoding stories response")
		writeJSONError(w, fetchStoriesFailedMsg, http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, errorMsg string, statusCode int) {
	w.WriteHeader(statusCode)
	fmt.Fprintln(w, fmt.Sprintf("{\"detail\": \"%s\"}", errorMsg))
}
