package appupdate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StoreKind identifies a storefront. It selects both the extraction strategy and the
// identity used in notifications and persisted state.
type StoreKind int

const (
	PlayStore StoreKind = iota
	AppStore
	MacStore
)

var storeKinds = []StoreKind{PlayStore, AppStore, MacStore}

func (k StoreKind) Label() string {
	switch k {
	case PlayStore:
		return "Google Play Store"
	case AppStore:
		return "iOS App Store"
	case MacStore:
		return "Mac App Store"
	}
	return fmt.Sprintf("StoreKind(%d)", int(k))
}

func (k StoreKind) String() string {
	switch k {
	case PlayStore:
		return "play_store"
	case AppStore:
		return "app_store"
	case MacStore:
		return "mac_store"
	}
	return fmt.Sprintf("store_kind_%d", int(k))
}

// ParseStoreKind accepts either the short name (play_store) or the label (Google Play Store).
func ParseStoreKind(s string) (StoreKind, error) {
	for _, k := range storeKinds {
		if s == k.String() || s == k.Label() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown store kind %q", s)
}

func (k *StoreKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseStoreKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// StoreConfig is the static description of one storefront check.
type StoreConfig struct {
	Kind StoreKind `yaml:"kind"`
	// URL is the listing page, or the lookup API endpoint for the App Store.
	URL string `yaml:"url"`
	// Locator is an XPath into the listing page. Empty for stores scanned by regex.
	Locator       string `yaml:"locator"`
	AvatarURL     string `yaml:"avatar_url"`
	MessagePrefix string `yaml:"message_prefix"`
}

// Message is the notification text for a detected update.
func (c StoreConfig) Message(version string) string {
	prefix := c.MessagePrefix
	if prefix == "" {
		prefix = c.Kind.Label()
	}
	return fmt.Sprintf("%s update: v%s", prefix, version)
}

// DefaultStores returns the built-in table, in check order.
func DefaultStores() []StoreConfig {
	return []StoreConfig{
		{
			Kind:      PlayStore,
			URL:       "https://play.google.com/store/apps/details?id=cc.narumi.chaldea&hl=en",
			Locator:   "/html/body/div[1]/div[4]/c-wiz/div/div[2]/div/div/main/c-wiz[4]/div[1]/div[2]/div/div[4]/span/div/span",
			AvatarURL: "https://i.imgur.com/kN7NO37.png",
		},
		{
			Kind:      AppStore,
			URL:       "https://itunes.apple.com/lookup?bundleId=cc.narumi.chaldea&country=us",
			Locator:   `//p[contains(@class, "whats-new__latest__version")]`,
			AvatarURL: "https://i.imgur.com/fTxPeCW.png",
		},
		{
			Kind:      MacStore,
			URL:       "https://apps.apple.com/us/app/chaldea/id1548713491",
			AvatarURL: "https://i.imgur.com/XP7rskN.png",
		},
	}
}

type storeFile struct {
	Stores []StoreConfig `yaml:"stores"`
}

// LoadStoreTable returns the default table with entries from the YAML file at path
// overriding the matching kinds. Empty fields in the file keep the default value.
// An empty path returns the defaults unchanged.
func LoadStoreTable(path string) ([]StoreConfig, error) {
	stores := DefaultStores()
	if path == "" {
		return stores, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading store table: %w", err)
	}
	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing store table %s: %w", path, err)
	}

	for _, override := range file.Stores {
		i := indexOfKind(stores, override.Kind)
		if i < 0 {
			return nil, fmt.Errorf("store table %s: unsupported kind %s", path, override.Kind)
		}
		if override.URL != "" {
			stores[i].URL = override.URL
		}
		if override.Locator != "" {
			stores[i].Locator = override.Locator
		}
		if override.AvatarURL != "" {
			stores[i].AvatarURL = override.AvatarURL
		}
		if override.MessagePrefix != "" {
			stores[i].MessagePrefix = override.MessagePrefix
		}
	}
	return stores, nil
}

func indexOfKind(stores []StoreConfig, kind StoreKind) int {
	for i, s := range stores {
		if s.Kind == kind {
			return i
		}
	}
	return -1
}
