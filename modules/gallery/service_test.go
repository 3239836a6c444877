package gallery_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/modules/gallery"
	"github.com/dmitrymomot/portfolio/pkg/content"
	"github.com/dmitrymomot/portfolio/pkg/file"
	"github.com/dmitrymomot/portfolio/pkg/mongo"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

// memRepo is an in-memory Repository. Update interprets the $set and $unset
// documents produced by mongo.Update.
type memRepo struct {
	mu        sync.Mutex
	items     map[bson.ObjectID]gallery.Item
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[bson.ObjectID]gallery.Item)}
}

func (r *memRepo) List(_ context.Context, category string) ([]gallery.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]gallery.Item, 0, len(r.items))
	for _, item := range r.items {
		if category == "" || slices.Contains(item.Categories, category) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *memRepo) Get(_ context.Context, id bson.ObjectID) (*gallery.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", gallery.ErrNotFound, id.Hex())
	}
	return &item, nil
}

func (r *memRepo) Create(_ context.Context, item *gallery.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memRepo) Update(_ context.Context, id bson.ObjectID, u *mongo.Update) (*gallery.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", gallery.ErrNotFound, id.Hex())
	}

	doc := u.Doc(time.Now().UTC())
	for key, v := range doc["$set"].(bson.M) {
		field, lang, _ := strings.Cut(key, ".")
		switch field {
		case "title":
			item.Title.Set(content.Lang(lang), v.(string))
		case "description":
			item.Description.Set(content.Lang(lang), v.(string))
		case "categories":
			item.Categories = v.([]string)
		case "imageUrl":
			item.ImageURL = v.(string)
		case "updatedAt":
			item.UpdatedAt = v.(time.Time)
		}
	}
	r.items[id] = item
	return &item, nil
}

func (r *memRepo) Delete(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", gallery.ErrNotFound, id.Hex())
	}
	delete(r.items, id)
	return nil
}

func newImage(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	r.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, r.ParseMultipartForm(1<<20))

	return r.MultipartForm.File["image"][0]
}

func newStorage(t *testing.T) (*file.LocalStorage, string) {
	t.Helper()

	dir := t.TempDir()
	s, err := file.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)
	return s, dir
}

func stored(t *testing.T, dir, url string) bool {
	t.Helper()

	key := strings.TrimPrefix(url, "/uploads/")
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	return err == nil
}

func createInput(t *testing.T) gallery.Input {
	t.Helper()

	in, err := gallery.Request{
		TitleEn:    ptr("My Project"),
		TitleSo:    ptr("Mashruuca"),
		TitleAr:    ptr("مشروعي"),
		Categories: content.NewList("PROJECT"),
		Image:      newImage(t, "a.png", pngBytes),
	}.Validate(content.Create)
	require.NoError(t, err)
	return in
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores item and image", func(t *testing.T) {
		t.Parallel()

		storage, dir := newStorage(t)
		now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		svc := gallery.NewService(newMemRepo(), storage, gallery.WithClock(func() time.Time { return now }))

		item, err := svc.Create(context.Background(), createInput(t))
		require.NoError(t, err)
		assert.False(t, item.ID.IsZero())
		assert.Equal(t, content.Text{En: "My Project", So: "Mashruuca", Ar: "مشروعي"}, item.Title)
		assert.Equal(t, []string{"PROJECT"}, item.Categories)
		assert.Equal(t, now, item.CreatedAt)
		assert.True(t, strings.HasPrefix(item.ImageURL, "/uploads/gallery/"))
		assert.True(t, stored(t, dir, item.ImageURL))
	})

	t.Run("rejects non image upload", func(t *testing.T) {
		t.Parallel()

		storage, _ := newStorage(t)
		svc := gallery.NewService(newMemRepo(), storage)

		in := createInput(t)
		in.Image = newImage(t, "a.png", []byte("not an image at all"))
		_, err := svc.Create(context.Background(), in)
		require.ErrorIs(t, err, file.ErrNotAnImage)
	})

	t.Run("enforces size limit", func(t *testing.T) {
		t.Parallel()

		storage, _ := newStorage(t)
		svc := gallery.NewService(newMemRepo(), storage, gallery.WithMaxImageSize(16))

		_, err := svc.Create(context.Background(), createInput(t))
		require.ErrorIs(t, err, file.ErrFileTooLarge)
	})

	t.Run("removes upload when store fails", func(t *testing.T) {
		t.Parallel()

		storage, dir := newStorage(t)
		repo := newMemRepo()
		repo.createErr = errors.New("boom")
		svc := gallery.NewService(repo, storage)

		_, err := svc.Create(context.Background(), createInput(t))
		require.Error(t, err)

		entries, err := os.ReadDir(filepath.Join(dir, "gallery"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("keeps translations that were not sent", func(t *testing.T) {
		t.Parallel()

		storage, _ := newStorage(t)
		svc := gallery.NewService(newMemRepo(), storage)
		ctx := context.Background()

		item, err := svc.Create(ctx, createInput(t))
		require.NoError(t, err)

		in, err := gallery.Request{TitleSo: ptr("Mashruuc cusub")}.Validate(content.Update)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, item.ID, in)
		require.NoError(t, err)
		assert.Equal(t, content.Text{En: "My Project", So: "Mashruuc cusub", Ar: "مشروعي"}, updated.Title)
		assert.Equal(t, item.ImageURL, updated.ImageURL)
		assert.Equal(t, item.Categories, updated.Categories)
	})

	t.Run("replaces image", func(t *testing.T) {
		t.Parallel()

		storage, dir := newStorage(t)
		svc := gallery.NewService(newMemRepo(), storage)
		ctx := context.Background()

		item, err := svc.Create(ctx, createInput(t))
		require.NoError(t, err)

		updated, err := svc.Update(ctx, item.ID, gallery.Input{
			Categories: []string{"TEAM"},
			Image:      newImage(t, "b.png", pngBytes),
		})
		require.NoError(t, err)
		assert.NotEqual(t, item.ImageURL, updated.ImageURL)
		assert.Equal(t, []string{"TEAM"}, updated.Categories)
		assert.True(t, stored(t, dir, updated.ImageURL))
		assert.False(t, stored(t, dir, item.ImageURL))
	})

	t.Run("empty update returns current item", func(t *testing.T) {
		t.Parallel()

		storage, _ := newStorage(t)
		svc := gallery.NewService(newMemRepo(), storage)
		ctx := context.Background()

		item, err := svc.Create(ctx, createInput(t))
		require.NoError(t, err)

		in, err := gallery.Request{}.Validate(content.Update)
		require.NoError(t, err)

		got, err := svc.Update(ctx, item.ID, in)
		require.NoError(t, err)
		assert.Equal(t, item.UpdatedAt, got.UpdatedAt)
	})

	t.Run("missing item", func(t *testing.T) {
		t.Parallel()

		storage, _ := newStorage(t)
		svc := gallery.NewService(newMemRepo(), storage)

		_, err := svc.Update(context.Background(), bson.NewObjectID(), gallery.Input{Categories: []string{"TEAM"}})
		require.ErrorIs(t, err, gallery.ErrNotFound)
	})
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	storage, dir := newStorage(t)
	svc := gallery.NewService(newMemRepo(), storage)
	ctx := context.Background()

	item, err := svc.Create(ctx, createInput(t))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))
	assert.False(t, stored(t, dir, item.ImageURL))

	_, err = svc.Get(ctx, item.ID)
	require.ErrorIs(t, err, gallery.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, item.ID), gallery.ErrNotFound)
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	storage, _ := newStorage(t)
	svc := gallery.NewService(newMemRepo(), storage)
	ctx := context.Background()

	_, err := svc.Create(ctx, createInput(t))
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	projects, err := svc.List(ctx, " project ")
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	teams, err := svc.List(ctx, "TEAM")
	require.NoError(t, err)
	assert.Empty(t, teams)

	_, err = svc.List(ctx, "PARTY")
	require.ErrorIs(t, err, validator.ErrInvalidValue)
}
