package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/bancho-vs/config"
	"github.com/quasilyte/gdata"
)

const settingsItem = "settings"

// itemStore is the part of gdata.Manager the settings store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore persists client preferences between runs. Match results are
// never stored.
type SettingsStore struct {
	items itemStore
}

// OpenSettingsStore opens the per-user data directory for appName.
func OpenSettingsStore(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &SettingsStore{items: m}, nil
}

// Load returns the saved settings, or the defaults when nothing was saved.
// Unknown character names fall back to the defaults for that side.
func (s *SettingsStore) Load() (cfg.Settings, error) {
	settings := cfg.DefaultSettings()

	data, err := s.items.LoadItem(settingsItem)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return settings, nil
	}

	var saved cfg.Settings
	if err := json.Unmarshal(data, &saved); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}

	if id, err := cfg.ParseCharacter(string(saved.P1Character)); err == nil {
		settings.P1Character = id
	}
	if id, err := cfg.ParseCharacter(string(saved.P2Character)); err == nil {
		settings.P2Character = id
	}
	settings.ShowBoxes = saved.ShowBoxes
	return settings, nil
}

func (s *SettingsStore) Save(settings cfg.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
