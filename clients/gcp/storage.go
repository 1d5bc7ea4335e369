package gcp

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloud.google.com/go/storage"
	"golang.org/x/net/context"
)

// UploadAvatar streams an image into the avatar bucket and returns the
// public URL the client apps store on the owning document.
func UploadAvatar(bucketName, objectPath string, r io.Reader) (string, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("storage.NewClient: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, time.Second*60)
	defer cancel()

	w := client.Bucket(bucketName).Object(objectPath).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		return "", fmt.Errorf("io.Copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("Object(%q).NewWriter: %w", objectPath, err)
	}

	slog.Debug("Blob uploaded successfully", "objectPath", objectPath)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectPath), nil
}
