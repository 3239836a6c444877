package file

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxImageSize is the upload limit for content images.
const DefaultMaxImageSize int64 = 5 << 20

// File describes a stored object.
type File struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mime_type"`
}

// Storage persists uploads under a key and resolves public URLs.
type Storage interface {
	Save(ctx context.Context, fh *multipart.FileHeader, key string) (*File, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
	// KeyFromURL reverses URL. It reports false for URLs this storage did not issue.
	KeyFromURL(url string) (string, bool)
}

// SVG is excluded: it can carry script.
var imageMIMETypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsImage reports whether the content of fh is a supported raster image.
// Detection uses magic bytes, so a renamed file is not accepted.
func IsImage(fh *multipart.FileHeader) bool {
	mimeType, err := GetMIMEType(fh)
	if err != nil {
		return false
	}
	_, ok := imageMIMETypes[mimeType]
	return ok
}

// ValidateImage checks the size limit and the detected content type.
func ValidateImage(fh *multipart.FileHeader, maxBytes int64) error {
	if err := ValidateSize(fh, maxBytes); err != nil {
		return err
	}
	if !IsImage(fh) {
		return ErrNotAnImage
	}
	return nil
}

// ValidateSize checks the declared size. Storage implementations do not
// re-check while streaming.
func ValidateSize(fh *multipart.FileHeader, maxBytes int64) error {
	if fh == nil {
		return ErrNilFileHeader
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d bytes", ErrFileTooLarge, fh.Size, maxBytes)
	}
	return nil
}

// GetMIMEType sniffs the first 512 bytes of the file.
func GetMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	return http.DetectContentType(buf[:n]), nil
}

// ObjectKey builds a collision-free key under prefix. The extension follows
// the detected content type, not the client's filename.
func ObjectKey(prefix string, fh *multipart.FileHeader) string {
	ext := ""
	if mimeType, err := GetMIMEType(fh); err == nil {
		ext = imageMIMETypes[mimeType]
	}
	if ext == "" && fh != nil {
		ext = strings.ToLower(filepath.Ext(SanitizeFilename(fh.Filename)))
	}
	return path.Join(strings.Trim(prefix, "/"), uuid.NewString()+ext)
}

// SanitizeFilename strips directories and NUL bytes from a client filename.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = strings.ReplaceAll(filename, "\x00", "")
	filename = path.Base(filename)

	if filename == "." || filename == ".." || filename == "/" || filename == "" {
		return "unnamed"
	}
	return filename
}

// cleanKey rejects keys that could escape the storage root.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	return key, nil
}
