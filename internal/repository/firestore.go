package repository

import (
	"context"
	"fmt"

	"nextskill/internal/qerrors"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreSource reads each resource from the Firestore collection of the same name, one
// document per record.
type FirestoreSource struct {
	client *firestore.Client
}

func NewFirestoreSource(client *firestore.Client) *FirestoreSource {
	return &FirestoreSource{client: client}
}

func (s *FirestoreSource) Fetch(ctx context.Context, name string) (interface{}, error) {
	iter := s.client.Collection(name).Documents(ctx)
	defer iter.Stop()

	records := make([]interface{}, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, fmt.Errorf("%w: collection %s", qerrors.ResourceNotFoundError, name)
			}
			return nil, fmt.Errorf("error reading %s collection: %w", name, err)
		}
		if !doc.Exists() {
			continue
		}

		records = append(records, documentRecord(doc.Ref.ID, doc.Data()))
	}

	return records, nil
}

// Watch listens to the named collections and calls onChange with the collection name whenever
// one of their documents is added, modified or removed. The initial contents of a collection are
// not reported. Watch blocks until ctx is cancelled or a listener fails.
func (s *FirestoreSource) Watch(ctx context.Context, onChange func(name string), names ...string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		g.Go(func() error {
			return s.watchCollection(gctx, name, onChange)
		})
	}

	return g.Wait()
}

func (s *FirestoreSource) watchCollection(ctx context.Context, name string, onChange func(name string)) error {
	iter := s.client.Collection(name).Snapshots(ctx)
	defer iter.Stop()

	initial := true
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done || status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%v collection listener error: %w", name, err)
		}

		if initial {
			initial = false
			continue
		}
		if len(snap.Changes) > 0 {
			onChange(name)
		}
	}
}

// documentRecord returns the document data with the document id stored under "id", unless the
// document already carries one.
func documentRecord(id string, data map[string]interface{}) map[string]interface{} {
	record := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		record[k] = v
	}
	if _, ok := record["id"]; !ok {
		record["id"] = id
	}

	return record
}
