package stories

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kevinsamson6262-hub/stories-rw-firestore/store"
)

// Story is the record persisted in the "stories" collection. The id and
// timestamp are always server-generated, never caller-supplied.
type Story struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Story     string    `json:"story"`
	Year      string    `json:"year"`
	Timestamp time.Time `json:"timestamp"`
}

// StoryCreate is the caller-supplied creation payload. Pointer fields so that
// a missing key can be told apart from an empty string; unknown extra fields
// are dropped by the JSON decoder rather than rejected.
type StoryCreate struct {
	Author *string `json:"author"`
	Title  *string `json:"title"`
	Story  *string `json:"story"`
}

func (c StoryCreate) validate() error {
	if c.Author == nil {
		return validationError{"author"}
	}
	if c.Title == nil {
		return validationError{"title"}
	}
	if c.Story == nil {
		return validationError{"story"}
	}
	return nil
}

type validationError struct {
	field string
}

func (e validationError) Error() string {
	return e.field + " is a required field"
}

// newStory builds a fully-populated record from caller input: fresh UUID,
// current UTC instant, and the year defaulted from the server's local clock
// (local, not UTC, matching the behavior existing callers rely on).
func newStory(author string, title string, story string) Story {
	return Story{
		ID:        uuid.NewString(),
		Author:    author,
		Title:     title,
		Story:     story,
		Year:      strconv.Itoa(time.Now().Year()),
		Timestamp: time.Now().UTC(),
	}
}

func (s Story) toDoc() map[string]interface{} {
	return map[string]interface{}{
		"id":        s.ID,
		"author":    s.Author,
		"title":     s.Title,
		"story":     s.Story,
		"year":      s.Year,
		"timestamp": store.EncodeTime(s.Timestamp),
	}
}

func storyFromDoc(doc map[string]interface{}) (Story, error) {
	s := Story{}

	var err error
	if s.ID, err = store.StringField(doc, "id"); err != nil {
		return Story{}, err
	}
	if s.Author, err = store.StringField(doc, "author"); err != nil {
		return Story{}, err
	}
	if s.Title, err = store.StringField(doc, "title"); err != nil {
		return Story{}, err
	}
	if s.Story, err = store.StringField(doc, "story"); err != nil {
		return Story{}, err
	}
	if s.Year, err = store.StringField(doc, "year"); err != nil {
		return Story{}, err
	}

	raw, err := store.StringField(doc, "timestamp")
	if err != nil {
		return Story{}, err
	}
	if s.Timestamp, err = store.ParseTime(raw); err != nil {
		return Story{}, err
	}

	return s, nil
}
