package file

import (
	"context"
	"mime/multipart"
)

// Upload validates fh as an image and stores it under a fresh key below prefix.
func Upload(ctx context.Context, s Storage, prefix string, fh *multipart.FileHeader, maxBytes int64) (*File, error) {
	if err := ValidateImage(fh, maxBytes); err != nil {
		return nil, err
	}
	return s.Save(ctx, fh, ObjectKey(prefix, fh))
}

// Remove deletes the object behind url. URLs the storage did not issue,
// including the empty string, are ignored.
func Remove(ctx context.Context, s Storage, url string) error {
	if url == "" {
		return nil
	}
	key, ok := s.KeyFromURL(url)
	if !ok {
		return nil
	}
	return s.Delete(ctx, key)
}
