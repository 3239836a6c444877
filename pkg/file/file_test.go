package file_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/pkg/file"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 32)...)
	gifBytes  = []byte("GIF89a\x01\x00\x01\x00")
	svgBytes  = []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
)

// newFileHeader round-trips content through a multipart form so the header
// can be opened like a real upload.
func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	r.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, r.ParseMultipartForm(1<<20))

	return r.MultipartForm.File["image"][0]
}

func TestIsImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  []byte
		want     bool
	}{
		{"png", "a.png", pngBytes, true},
		{"jpeg", "a.jpg", jpegBytes, true},
		{"gif", "a.gif", gifBytes, true},
		{"svg rejected", "a.svg", svgBytes, false},
		{"text renamed to png", "evil.png", []byte("just some text"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, file.IsImage(newFileHeader(t, tt.filename, tt.content)))
		})
	}

	assert.False(t, file.IsImage(nil))
}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	require.NoError(t, file.ValidateImage(newFileHeader(t, "a.png", pngBytes), file.DefaultMaxImageSize))
	require.ErrorIs(t, file.ValidateImage(newFileHeader(t, "a.png", pngBytes), 8), file.ErrFileTooLarge)
	require.ErrorIs(t, file.ValidateImage(newFileHeader(t, "a.txt", []byte("hello")), 0), file.ErrNotAnImage)
	require.ErrorIs(t, file.ValidateImage(nil, 10), file.ErrNilFileHeader)
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	key := file.ObjectKey("/gallery/", newFileHeader(t, "photo.PNG", pngBytes))
	assert.True(t, strings.HasPrefix(key, "gallery/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	jpg := file.ObjectKey("skills", newFileHeader(t, "icon.bin", jpegBytes))
	assert.True(t, strings.HasSuffix(jpg, ".jpg"), "extension follows detected type")

	assert.NotEqual(t, key, file.ObjectKey("gallery", newFileHeader(t, "photo.png", pngBytes)))
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"photo.png":             "photo.png",
		"../../../etc/passwd":   "passwd",
		`C:\Windows\system.ini`: "system.ini",
		"bad\x00name.png":       "badname.png",
		"..":                    "unnamed",
		"":                      "unnamed",
		"/":                     "unnamed",
	}

	for in, want := range tests {
		assert.Equal(t, want, file.SanitizeFilename(in), "input %q", in)
	}
}
