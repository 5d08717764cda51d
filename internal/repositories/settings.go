package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

const (
	settingsBucket = "settings"
	settingsKey    = "current"
)

// SettingsRepository persists dashboard settings in a BoltDB file. Bolt keeps
// everything in a single local file, so no external database process is
// needed for the dashboard itself.
type SettingsRepository struct {
	db       *bolt.DB
	defaults models.Settings
}

// NewSettingsRepository ensures the settings bucket exists. The defaults are
// served (and persisted, with a generated client id) on first read.
func NewSettingsRepository(db *bolt.DB, defaults models.Settings) (*SettingsRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &SettingsRepository{db: db, defaults: normalize(defaults)}, nil
}

// OpenBolt opens (or creates) the BoltDB file at the given path.
func OpenBolt(path string) (*bolt.DB, error) {
	return bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
}

// Get returns the stored settings, falling back to the defaults when nothing
// was saved yet. A missing client id is generated once and persisted so it
// stays stable across restarts.
func (r *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	found := false

	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(settingsBucket)).Get([]byte(settingsKey))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &s)
	})
	if err != nil {
		return models.Settings{}, err
	}

	if !found {
		s = r.defaults
	}
	if s.ClientID == "" {
		s.ClientID = uuid.NewString()
		if err := r.Save(ctx, s); err != nil {
			logger.Log.Errorw("failed to persist generated client id", "error", err)
			return models.Settings{}, err
		}
		logger.Log.Infow("generated client id", "client_id", s.ClientID)
	}
	return s, nil
}

// Save normalizes and stores the settings wholesale.
func (r *SettingsRepository) Save(ctx context.Context, s models.Settings) error {
	s = normalize(s)
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(settingsKey), data)
	})
}

// normalize trims whitespace and trailing slashes from base URLs so path
// concatenation downstream stays predictable.
func normalize(s models.Settings) models.Settings {
	s.RatesURL = strings.TrimRight(strings.TrimSpace(s.RatesURL), "/")
	s.AnalyticsURL = strings.TrimRight(strings.TrimSpace(s.AnalyticsURL), "/")
	s.ProfileURL = strings.TrimRight(strings.TrimSpace(s.ProfileURL), "/")
	s.ClientID = strings.TrimSpace(s.ClientID)
	return s
}
