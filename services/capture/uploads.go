package capture

import (
	"bytes"
	"context"
	"log"
	"time"
)

// uploadSet tracks the blobs uploaded during one capture so they can be
// removed again if the order row is never committed.
type uploadSet struct {
	blobs     BlobStore
	keys      []string
	committed bool
}

func newUploadSet(blobs BlobStore) *uploadSet {
	return &uploadSet{blobs: blobs}
}

func (u *uploadSet) add(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	url, err := u.blobs.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return "", err
	}
	u.keys = append(u.keys, key)
	return url, nil
}

// commit keeps every uploaded blob.
func (u *uploadSet) commit() {
	u.committed = true
}

// discard deletes the uploaded blobs unless the set was committed.
// Deletion is best effort, a blob that cannot be removed is only logged.
func (u *uploadSet) discard() {
	if u.committed || len(u.keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, key := range u.keys {
		if err := u.blobs.Delete(ctx, key); err != nil {
			log.Printf("Error deleting orphaned artifact %s: %v", key, err)
		}
	}
}
