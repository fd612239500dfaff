package contact

import (
	"context"

	"github.com/kevinsamson6262-hub/stories-rw-firestore/store"
)

// Collection is the Firestore collection holding contact message documents,
// keyed by id. No listing operation is exposed over it.
const Collection = "contact_messages"

type Service interface {
	Create(ctx context.Context, name string, email string, message string) (ContactMessage, error)
}

type service struct {
	conn store.Connection
}

// NewService instantiates the contact service on top of a store connection.
func NewService(conn store.Connection) Service {
	return service{conn}
}

// Create - constructs the record server-side and performs exactly one
// document write.
func (s service) Create(ctx context.Context, name string, email string, message string) (ContactMessage, error) {
	record := newContactMessage(name, email, message)

	if err := s.conn.Put(ctx, Collection, record.ID, record.toDoc()); err != nil {
		return ContactMessage{}, err
	}

	return record, nil
}
