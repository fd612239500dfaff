package store

import (
	"context"
	"sync"
)

// InMemoryConnection is a Connection backed by process memory. It backs the
// test suites and doubles as a throwaway local backend when no Firestore
// project is at hand.
type InMemoryConnection struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
}

// NewInMemoryConnection instantiates an empty in-memory store.
func NewInMemoryConnection() *InMemoryConnection {
	return &InMemoryConnection{
		collections: make(map[string]map[string]map[string]interface{}),
	}
}

func (c *InMemoryConnection) Put(ctx context.Context, collection string, id string, doc map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	coll, ok := c.collections[collection]
	if !ok {
		coll = make(map[string]map[string]interface{})
		c.collections[collection] = coll
	}

	coll[id] = copyDoc(doc)
	return nil
}

func (c *InMemoryConnection) ScanAll(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]map[string]interface{}, 0, len(c.collections[collection]))
	for _, doc := range c.collections[collection] {
		docs = append(docs, copyDoc(doc))
	}

	return docs, nil
}

func (c *InMemoryConnection) Check(ctx context.Context) error {
	return nil
}

func (c *InMemoryConnection) Close() error {
	return nil
}

// Get returns the stored document for an id, mainly for test assertions.
func (c *InMemoryConnection) Get(collection string, id string) (map[string]interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.collections[collection][id]
	if !ok {
		return nil, false
	}
	return copyDoc(doc), true
}

// Len reports how many documents a collection holds.
func (c *InMemoryConnection) Len(collection string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.collections[collection])
}

// Documents never escape by reference, callers only ever see copies.
func copyDoc(doc map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		copied[k] = v
	}
	return copied
}
