package appupdate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultStoresOrderAndLabels(t *testing.T) {
	stores := DefaultStores()
	require.Len(t, stores, 3)

	var labels []string
	for _, s := range stores {
		labels = append(labels, s.Kind.Label())
	}
	require.Equal(t, []string{"Google Play Store", "iOS App Store", "Mac App Store"}, labels)
	require.Empty(t, stores[2].Locator)
}

func TestStoreConfigMessage(t *testing.T) {
	cfg := StoreConfig{Kind: AppStore}
	require.Equal(t, "iOS App Store update: v2.1.0", cfg.Message("2.1.0"))

	cfg.MessagePrefix = "Chaldea (iOS)"
	require.Equal(t, "Chaldea (iOS) update: v2.1.0", cfg.Message("2.1.0"))
}

func TestParseStoreKind(t *testing.T) {
	k, err := ParseStoreKind("mac_store")
	require.NoError(t, err)
	require.Equal(t, MacStore, k)

	k, err = ParseStoreKind("Google Play Store")
	require.NoError(t, err)
	require.Equal(t, PlayStore, k)

	_, err = ParseStoreKind("windows_store")
	require.Error(t, err)
}

func TestLoadStoreTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stores.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stores:
  - kind: play_store
    url: https://play.google.com/store/apps/details?id=com.example&hl=en
    message_prefix: Example (Android)
  - kind: Mac App Store
    avatar_url: https://example.com/mac.png
`), 0o644))

	stores, err := LoadStoreTable(path)
	require.NoError(t, err)
	require.Len(t, stores, 3)

	defaults := DefaultStores()
	require.Equal(t, "https://play.google.com/store/apps/details?id=com.example&hl=en", stores[0].URL)
	require.Equal(t, defaults[0].Locator, stores[0].Locator)
	require.Equal(t, "Example (Android)", stores[0].MessagePrefix)
	require.Equal(t, defaults[1], stores[1])
	require.Equal(t, defaults[2].URL, stores[2].URL)
	require.Equal(t, "https://example.com/mac.png", stores[2].AvatarURL)
}

func TestLoadStoreTableErrors(t *testing.T) {
	stores, err := LoadStoreTable("")
	require.NoError(t, err)
	require.Equal(t, DefaultStores(), stores)

	_, err = LoadStoreTable(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "stores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stores:\n  - kind: windows_store\n"), 0o644))
	_, err = LoadStoreTable(path)
	require.Error(t, err)
}
