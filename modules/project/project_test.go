package project_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/handler"
	"github.com/dmitrymomot/portfolio/modules/project"
	"github.com/dmitrymomot/portfolio/pkg/content"
	"github.com/dmitrymomot/portfolio/pkg/file"
	"github.com/dmitrymomot/portfolio/pkg/logger"
	"github.com/dmitrymomot/portfolio/pkg/mongo"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

func ptr(s string) *string { return &s }

type memRepo struct {
	mu       sync.Mutex
	projects map[bson.ObjectID]project.Project
}

func newMemRepo() *memRepo {
	return &memRepo{projects: make(map[bson.ObjectID]project.Project)}
}

func (r *memRepo) List(_ context.Context, tech string) ([]project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if tech == "" {
			out = append(out, p)
			continue
		}
		for _, s := range p.TechStack {
			if strings.EqualFold(s, tech) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *memRepo) Get(_ context.Context, id bson.ObjectID) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", project.ErrNotFound, id.Hex())
	}
	return &p, nil
}

func (r *memRepo) Create(_ context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.projects[p.ID] = *p
	return nil
}

func (r *memRepo) Update(_ context.Context, id bson.ObjectID, u *mongo.Update) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", project.ErrNotFound, id.Hex())
	}
	doc := u.Doc(time.Now())
	for key, v := range doc["$set"].(bson.M) {
		field, lang, _ := strings.Cut(key, ".")
		switch field {
		case "title":
			p.Title.Set(content.Lang(lang), v.(string))
		case "description":
			p.Description.Set(content.Lang(lang), v.(string))
		case "techStack":
			p.TechStack = v.([]string)
		case "link":
			p.Link = v.(string)
		case "githubUrl":
			p.GithubURL = v.(string)
		case "imageUrl":
			p.ImageURL = v.(string)
		}
	}
	if unset, ok := doc["$unset"].(bson.M); ok {
		for key := range unset {
			switch key {
			case "link":
				p.Link = ""
			case "githubUrl":
				p.GithubURL = ""
			}
		}
	}
	r.projects[id] = p
	return &p, nil
}

func (r *memRepo) Delete(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return fmt.Errorf("%w: %s", project.ErrNotFound, id.Hex())
	}
	delete(r.projects, id)
	return nil
}

func validRequest() project.Request {
	return project.Request{
		TitleEn:       ptr("Portfolio API"),
		DescriptionEn: ptr("Multilingual content API"),
		DescriptionSo: ptr("API luqado badan"),
		TechStack:     content.NewList(`["Go","MongoDB"]`),
		Link:          ptr("https://example.com"),
	}
}

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*project.Request)
		mode    content.Mode
		field   string
		wantErr error
	}{
		{name: "valid", mutate: func(*project.Request) {}, mode: content.Create},
		{
			name:    "description required",
			mutate:  func(r *project.Request) { r.DescriptionEn, r.DescriptionSo = nil, nil },
			mode:    content.Create,
			field:   "description",
			wantErr: validator.ErrFieldRequired,
		},
		{
			name:    "tech stack required on create",
			mutate:  func(r *project.Request) { r.TechStack = content.List{} },
			mode:    content.Create,
			field:   "techStack",
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:    "tech stack entry too long",
			mutate:  func(r *project.Request) { r.TechStack = content.NewList(strings.Repeat("x", 51)) },
			mode:    content.Create,
			field:   "techStack",
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:    "tech stack markup",
			mutate:  func(r *project.Request) { r.TechStack = content.NewList("Go", "<script>x</script>") },
			mode:    content.Create,
			field:   "techStack",
			wantErr: validator.ErrMarkupRejected,
		},
		{
			name:    "malformed link",
			mutate:  func(r *project.Request) { r.Link = ptr("not a url") },
			mode:    content.Create,
			field:   "link",
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:    "malformed github url",
			mutate:  func(r *project.Request) { r.GithubURL = ptr("github.com/x") },
			mode:    content.Create,
			field:   "githubUrl",
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:   "empty link clears",
			mutate: func(r *project.Request) { *r = project.Request{Link: ptr("")} },
			mode:   content.Update,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tt.mutate(&req)
			_, err := req.Validate(tt.mode)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field))
		})
	}
}

func TestServiceUpdateClearsLink(t *testing.T) {
	t.Parallel()

	storage, err := file.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	svc := project.NewService(newMemRepo(), storage)
	ctx := context.Background()

	in, err := validRequest().Validate(content.Create)
	require.NoError(t, err)
	p, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", p.Link)
	assert.Equal(t, []string{"Go", "MongoDB"}, p.TechStack)

	in, err = project.Request{Link: ptr(""), GithubURL: ptr("https://github.com/me/api")}.Validate(content.Update)
	require.NoError(t, err)
	p, err = svc.Update(ctx, p.ID, in)
	require.NoError(t, err)
	assert.Empty(t, p.Link)
	assert.Equal(t, "https://github.com/me/api", p.GithubURL)
	assert.Equal(t, "Portfolio API", p.Title.En)

	list, err := svc.List(ctx, " mongodb ")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	storage, err := file.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	srv := project.NewHandler(project.NewService(newMemRepo(), storage), nil,
		handler.NewErrorHandler(logger.Nop(), nil)).Handle()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"title_en":"CMS","description_ar":"نظام إدارة المحتوى","techStack":"Go","githubUrl":"javascript:alert(1)"}`))
	r.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid githubUrl URL.")

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"title_en":"CMS","description_ar":"نظام إدارة المحتوى","techStack":"Go"}`))
	r.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, r)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Data project.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Go"}, body.Data.TechStack)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+body.Data.ID.Hex(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
