package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/bancho-vs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryItems struct {
	items   map[string][]byte
	loadErr error
}

func (m *memoryItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryItems) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func TestSettingsStore_DefaultsWhenEmpty(t *testing.T) {
	store := &SettingsStore{items: &memoryItems{items: map[string][]byte{}}}

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultSettings(), settings)
}

func TestSettingsStore_SaveThenLoad(t *testing.T) {
	store := &SettingsStore{items: &memoryItems{items: map[string][]byte{}}}

	want := cfg.Settings{P1Character: cfg.BruteArms, P2Character: cfg.Bancho, ShowBoxes: true}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_UnknownCharacterFallsBack(t *testing.T) {
	items := &memoryItems{items: map[string][]byte{
		settingsItem: []byte(`{"p1Character":"ryu","p2Character":"bruteArms"}`),
	}}
	store := &SettingsStore{items: items}

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultSettings().P1Character, settings.P1Character)
	assert.Equal(t, cfg.BruteArms, settings.P2Character)
}

func TestSettingsStore_Errors(t *testing.T) {
	diskErr := errors.New("disk gone")
	store := &SettingsStore{items: &memoryItems{loadErr: diskErr}}

	settings, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, diskErr)
	assert.Equal(t, cfg.DefaultSettings(), settings)

	store = &SettingsStore{items: &memoryItems{items: map[string][]byte{settingsItem: []byte("{")}}}
	_, err = store.Load()
	assert.ErrorContains(t, err, "parse settings")
}
