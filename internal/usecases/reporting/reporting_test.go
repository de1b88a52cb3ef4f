package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeBody(t *testing.T) {
	var platform *string
	limit := 50

	body := NewEnvelope().
		AddSummary("total_posts", 3).
		Filter("platform", Optional(platform)).
		Filter("limit", Optional(&limit)).
		Body("analytics", "", map[string]any{"posts": []string{}})

	assert.Contains(t, body, "analytics")
	assert.Contains(t, body, "filters_applied")
	assert.NotContains(t, body, "breakdown")

	filters := body["filters_applied"].(map[string]any)
	assert.Nil(t, filters["platform"])
	assert.Equal(t, 50, filters["limit"])

	empty := NewEnvelope().Body("summary", "breakdown", nil)
	assert.Equal(t, map[string]any{}, empty["summary"])
	assert.Equal(t, map[string]any{}, empty["breakdown"])
	assert.Equal(t, map[string]any{}, empty["filters_applied"])
}

func TestParseGenerated(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "json puro", raw: `{"title":"Growth"}`, want: "Growth"},
		{name: "bloco markdown", raw: "```json\n{\"title\":\"Growth\"}\n```", want: "Growth"},
		{name: "texto ao redor", raw: `Aqui está: {"title":"Growth"} espero que ajude`, want: "Growth"},
		{name: "texto livre", raw: "Just some prose", wantErr: true},
		{name: "vazio", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGenerated[payload](tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparseable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Title)
		})
	}

	list, err := ParseGenerated[[]payload](`[{"title":"a"},{"title":"b"}]`)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestResolveContent(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	req := ContentRequest{
		Prompt:   strings.Repeat("a", 80),
		Platform: "instagram",
		Tone:     "casual",
	}

	t.Run("texto livre vira conteúdo degradado", func(t *testing.T) {
		content := ResolveContent(req, "Plain answer text", now)

		assert.True(t, content.Degraded)
		assert.Equal(t, "Plain answer text", content.Content)
		assert.Equal(t, strings.Repeat("a", 50)+"...", content.Title)
		assert.Equal(t, []string{"#business", "#ai", "#growth"}, content.Hashtags)
		assert.Equal(t, 7.0, content.EstimatedEngagement)
		assert.Equal(t, "instagram", content.Platform)
	})

	t.Run("json válido é aceito", func(t *testing.T) {
		content := ResolveContent(req, `{"title":"T","content":"C","hashtags":["#x"],"estimated_engagement":9}`, now)

		assert.False(t, content.Degraded)
		assert.Equal(t, "T", content.Title)
		assert.Equal(t, 9.0, content.EstimatedEngagement)
		assert.Equal(t, "casual", content.Tone)
		assert.Equal(t, now, content.GeneratedAt)
	})

	t.Run("falha na chamada", func(t *testing.T) {
		content := ErrorContent(req, now)

		assert.Equal(t, "AI-Powered Business Growth", content.Title)
		assert.Equal(t, 6.0, content.EstimatedEngagement)
		assert.Equal(t, "Fallback content due to API error", content.Error)
	})
}
