package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type firestoreConnection struct {
	client *firestore.Client
}

// Connect builds the Firestore-backed connection. credentialsFile points at a
// service account key file; when empty, the client is constructed from
// application default credentials instead, so the same constructor covers
// both deployment shapes.
func Connect(ctx context.Context, projectID string, credentialsFile string) (Connection, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to firestore: %w", err)
	}

	return &firestoreConnection{client: client}, nil
}

// Put - idempotent upsert, last write to a given id wins
func (fc *firestoreConnection) Put(ctx context.Context, collection string, id string, doc map[string]interface{}) error {
	_, err := fc.client.Collection(collection).Doc(id).Set(ctx, doc)
	return err
}

// ScanAll streams every document in the collection. Full scan: fine while
// collections stay small, there is no cursor or limit.
func (fc *firestoreConnection) ScanAll(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	iter := fc.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []map[string]interface{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, snap.Data())
	}

	return docs, nil
}

// Check - Feeds into the Healthcheck and checks whether we can reach Firestore
func (fc *firestoreConnection) Check(ctx context.Context) error {
	iter := fc.client.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func (fc *firestoreConnection) Close() error {
	return fc.client.Close()
}
