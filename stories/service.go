package stories

import (
	"context"
	"sort"

	"github.com/kevinsamson6262-hub/stories-rw-firestore/store"
)

// Collection is the Firestore collection holding story documents, keyed by id.
const Collection = "stories"

type Service interface {
	Create(ctx context.Context, author string, title string, story string) (Story, error)
	List(ctx context.Context) ([]Story, error)
}

type service struct {
	conn store.Connection
}

// NewService instantiates the stories service on top of a store connection.
func NewService(conn store.Connection) Service {
	return service{conn}
}

// Create - constructs the record server-side and performs exactly one
// document write. The fully-populated record is returned to the caller.
func (s service) Create(ctx context.Context, author string, title string, story string) (Story, error) {
	record := newStory(author, title, story)

	if err := s.conn.Put(ctx, Collection, record.ID, record.toDoc()); err != nil {
		return Story{}, err
	}

	return record, nil
}

// List - scans the whole collection and returns stories most recent first.
// Equal timestamps are broken ascending by id, so repeated calls with no
// intervening writes always come back in the same order. O(N log N) per
// request with no pagination; only acceptable while the collection is small.
func (s service) List(ctx context.Context) ([]Story, error) {
	docs, err := s.conn.ScanAll(ctx, Collection)
	if err != nil {
		return nil, err
	}

	result := make([]Story, 0, len(docs))
	for _, doc := range docs {
		record, err := storyFromDoc(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.After(result[j].Timestamp)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}
