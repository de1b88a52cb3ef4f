package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedScripts(t *testing.T) {
	entries, err := fs.ReadDir(scripts, "sql")
	require.NoError(t, err)

	var ups, downs int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}

	assert.Positive(t, ups)
	assert.Equal(t, ups, downs, "cada migração precisa de um script de reversão")

	up, err := fs.ReadFile(scripts, "sql/000001_init_schema.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"business_metrics", "social_media_posts", "ad_campaigns", "cash_flow", "brand_assets", "ai_insights"} {
		assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
