package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	require.NoError(t, cat.Validate())

	assert.Equal(t, "The Syndicate", cat.ProductName(1))
	assert.Equal(t, "TONG", cat.ProductName(2))
	assert.Equal(t, "Chokka Bundle", cat.ProductName(3))
	assert.Equal(t, "Unknown Item", cat.ProductName(99))

	assert.Equal(t, []int64{1, 2}, cat.Expand(3))
	assert.Equal(t, []int64{1}, cat.Expand(1))
	assert.Empty(t, cat.Expand(7))

	assert.True(t, cat.IsBundle(3))
	assert.False(t, cat.IsBundle(1))

	bundle, ok := cat.BundleFor(2)
	require.True(t, ok)
	assert.Equal(t, int64(3), bundle.ID)

	assert.True(t, cat.IsDhaka("  dhaka "))
	assert.False(t, cat.IsDhaka("Chittagong"))
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cat, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog(), cat)
	})

	t.Run("file overrides only what it sets", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		content := `
delivery_dhaka: 70
telegram_chat_ids: ["111", "222"]
admin_panel_url: https://example.test/admin
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cat, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, int64(70), cat.DeliveryDhaka)
		assert.Equal(t, int64(150), cat.DeliveryOutside)
		assert.Equal(t, []string{"111", "222"}, cat.TelegramChatIDs)
		assert.Equal(t, "https://example.test/admin", cat.AdminPanelURL)
		assert.Len(t, cat.Products, 3)
	})

	t.Run("rejects unknown bundle component", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		content := `
products:
  - id: 1
    name: One
  - id: 5
    name: Box
    components: [1, 4]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := LoadCatalog(path)
		assert.ErrorContains(t, err, "unknown component 4")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_CONFIG_PATH", "")
	t.Setenv("TELEGRAM_CHAT_IDS", "10, 20")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("EVENTS_BACKEND", "SQS")
	t.Setenv("COURIER_SYNC_CONCURRENCY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20"}, cfg.Catalog.TelegramChatIDs)
	assert.Equal(t, defaultOrigins, cfg.CORSAllowedOrigins)
	assert.Equal(t, EventsBackendSQS, cfg.EventsBackend)
	assert.Equal(t, 5, cfg.CourierSyncSize)
}
