package contact

import (
	"time"

	"github.com/google/uuid"

	"github.com/kevinsamson6262-hub/stories-rw-firestore/store"
)

// ContactMessage is the record persisted in the "contact_messages"
// collection. The id and timestamp are server-generated.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactMessageCreate is the caller-supplied submission payload. Unknown
// extra fields are dropped by the JSON decoder rather than rejected.
type ContactMessageCreate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

func (c ContactMessageCreate) validate() error {
	if c.Name == nil {
		return validationError{"name"}
	}
	if c.Email == nil {
		return validationError{"email"}
	}
	if c.Message == nil {
		return validationError{"message"}
	}
	return nil
}

type validationError struct {
	field string
}

func (e validationError) Error() string {
	return e.field + " is a required field"
}

func newContactMessage(name string, email string, message string) ContactMessage {
	return ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

func (m ContactMessage) toDoc() map[string]interface{} {
	return map[string]interface{}{
		"id":        m.ID,
		"name":      m.Name,
		"email":     m.Email,
		"message":   m.Message,
		"timestamp": store.EncodeTime(m.Timestamp),
	}
}
