package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"
)

// NewFirestoreClient initializes a Firebase app and returns its Firestore client. An empty
// credentialsFile falls back to the application default credentials.
func NewFirestoreClient(ctx context.Context, projectID string, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var conf *firebaseSDK.Config
	if projectID != "" {
		conf = &firebaseSDK.Config{ProjectID: projectID}
	}

	app, err := firebaseSDK.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %w", err)
	}

	return client, nil
}
