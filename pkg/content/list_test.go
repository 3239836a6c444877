package content_test

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/pkg/content"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

var skillCategories = []string{"FRONTEND", "BACKEND", "DATABASE", "DEVOPS", "MOBILE", "DESIGN", "TOOLS", "OTHER"}

func TestCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      content.List
		expected []string
		wantErr  error
		message  string
	}{
		{
			name:     "json array string",
			raw:      content.NewList(`["FRONTEND","BACKEND"]`),
			expected: []string{"FRONTEND", "BACKEND"},
		},
		{
			name:     "bare string",
			raw:      content.NewList("FRONTEND"),
			expected: []string{"FRONTEND"},
		},
		{
			name:     "repeated form values are trimmed and de-duplicated",
			raw:      content.NewList(" FRONTEND ", "BACKEND", "FRONTEND"),
			expected: []string{"FRONTEND", "BACKEND"},
		},
		{
			name:    "lower-case member is not in the set",
			raw:     content.NewList("frontend"),
			wantErr: validator.ErrInvalidCategory,
			message: "Invalid categories: frontend. Allowed values: FRONTEND, BACKEND, DATABASE, DEVOPS, MOBILE, DESIGN, TOOLS, OTHER.",
		},
		{
			name:    "blank member in json array",
			raw:     content.NewList(`["FRONTEND",""]`),
			wantErr: validator.ErrInvalidCategoryFormat,
			message: "Invalid categories format.",
		},
		{
			name:    "whitespace form value next to a valid one",
			raw:     content.NewList("FRONTEND", "   "),
			wantErr: validator.ErrInvalidCategoryFormat,
			message: "Invalid categories format.",
		},
		{
			name:    "only blank values",
			raw:     content.NewList(`[" ",""]`),
			wantErr: validator.ErrInvalidCategoryFormat,
			message: "categories must contain at least one value.",
		},
		{
			name:    "invalid member is named",
			raw:     content.NewList(`["NOT_A_CATEGORY"]`),
			wantErr: validator.ErrInvalidCategory,
			message: "Invalid categories: NOT_A_CATEGORY. Allowed values: FRONTEND, BACKEND, DATABASE, DEVOPS, MOBILE, DESIGN, TOOLS, OTHER.",
		},
		{
			name:    "broken json array",
			raw:     content.NewList(`["FRONTEND"`),
			wantErr: validator.ErrInvalidCategoryFormat,
			message: "Invalid categories format.",
		},
		{
			name:    "empty array",
			raw:     content.NewList(`[]`),
			wantErr: validator.ErrInvalidCategoryFormat,
			message: "categories must contain at least one value.",
		},
		{
			name:    "absent",
			raw:     content.List{},
			wantErr: validator.ErrInvalidCategoryFormat,
			message: "categories must contain at least one value.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := content.Categories("categories", tt.raw, skillCategories)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.message, validator.ExtractValidationErrors(err)[0].Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestList_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var body struct {
		Categories content.List `json:"categories"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"categories":["PROJECT","team"]}`), &body))
	got, err := content.ParseList(body.Categories)
	require.NoError(t, err)
	assert.Equal(t, []string{"PROJECT", "team"}, got)

	require.NoError(t, json.Unmarshal([]byte(`{"categories":"[\"EVENT\"]"}`), &body))
	got, err = content.ParseList(body.Categories)
	require.NoError(t, err)
	assert.Equal(t, []string{"EVENT"}, got)

	require.NoError(t, json.Unmarshal([]byte(`{"categories":null}`), &body))
	assert.False(t, body.Categories.Present())

	require.NoError(t, json.Unmarshal([]byte(`{"categories":{"a":1}}`), &body))
	assert.True(t, body.Categories.Present())
	_, err = content.Categories("categories", body.Categories, skillCategories)
	assert.ErrorIs(t, err, validator.ErrInvalidCategoryFormat)
}

func TestTechStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      content.List
		expected []string
		wantErr  error
	}{
		{
			name:     "trimmed and de-duplicated",
			raw:      content.NewList(`["Go"," MongoDB ","Go"]`),
			expected: []string{"Go", "MongoDB"},
		},
		{
			name:     "ampersand near the length limit",
			raw:      content.NewList("R&D tools with a very long name that is 48 chars"),
			expected: []string{"R&D tools with a very long name that is 48 chars"},
		},
		{
			name:     "exactly fifty characters",
			raw:      content.NewList(strings.Repeat("a", 50)),
			expected: []string{strings.Repeat("a", 50)},
		},
		{
			name:    "empty array",
			raw:     content.NewList(`[]`),
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:    "whitespace entry",
			raw:     content.NewList("React", "   "),
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:    "blank entry in json array",
			raw:     content.NewList(`["React",""]`),
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:    "entry over fifty characters",
			raw:     content.NewList(strings.Repeat("a", 51)),
			wantErr: validator.ErrInvalidFormat,
		},
		{
			name:    "markup only entry",
			raw:     content.NewList("Go", "<script>x</script>"),
			wantErr: validator.ErrMarkupRejected,
		},
		{
			name:    "too many entries",
			raw:     content.NewList(numbered(validator.MaxTechStackItems + 1)...),
			wantErr: validator.ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := content.TechStack("techStack", tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "tech-" + strconv.Itoa(i)
	}
	return out
}
