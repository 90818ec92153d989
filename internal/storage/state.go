// ABOUTME: Versioned persistence of the WorkoutState envelope on top of a Store.
// ABOUTME: Load and save failures are logged and degrade to "no data" / ignored.
package storage

import (
	"encoding/json"
	"errors"

	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// StateKey is the key holding the persisted envelope.
	StateKey = "hypertrophy-state"
	// StateVersion is written into every saved envelope.
	StateVersion = "1.0.1"
)

type envelope struct {
	Version string          `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Migration rewrites stored data written by an older version.
type Migration func(data json.RawMessage) (json.RawMessage, error)

// StateStore loads and saves the WorkoutState envelope.
type StateStore struct {
	store      Store
	log        logrus.FieldLogger
	migrations map[string]Migration
}

// NewStateStore wraps store. A nil logger falls back to the logrus standard logger.
func NewStateStore(store Store, log logrus.FieldLogger) *StateStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StateStore{
		store:      store,
		log:        log.WithField("component", "state-store"),
		migrations: make(map[string]Migration),
	}
}

// RegisterMigration installs m for envelopes stored with fromVersion.
func (s *StateStore) RegisterMigration(fromVersion string, m Migration) {
	s.migrations[fromVersion] = m
}

// Load returns the stored state, or nil when nothing usable is stored.
func (s *StateStore) Load() *models.WorkoutState {
	raw, err := s.store.Get(StateKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WithError(err).Error("failed to load state")
		}
		return nil
	}
	if raw == "" {
		return nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.log.WithError(err).Error("failed to load state")
		return nil
	}

	data := env.Data
	if env.Version != StateVersion {
		s.log.WithFields(logrus.Fields{
			"stored":  env.Version,
			"current": StateVersion,
		}).Warn("storage version mismatch")

		if migrate, ok := s.migrations[env.Version]; ok {
			migrated, err := migrate(data)
			if err != nil {
				s.log.WithError(err).WithField("stored", env.Version).Error("state migration failed, using stored data as-is")
			} else {
				data = migrated
			}
		}
	}

	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var state models.WorkoutState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.WithError(err).Error("failed to load state")
		return nil
	}
	return &state
}

// Save writes state under StateKey. It reports success but never returns the
// error; in-memory state stays authoritative.
func (s *StateStore) Save(state *models.WorkoutState) bool {
	data, err := json.Marshal(state)
	if err != nil {
		s.log.WithError(err).Error("failed to save state")
		return false
	}
	env, err := json.Marshal(envelope{Version: StateVersion, Data: data})
	if err != nil {
		s.log.WithError(err).Error("failed to save state")
		return false
	}
	if err := s.store.Set(StateKey, string(env)); err != nil {
		s.log.WithError(err).Error("failed to save state")
		return false
	}
	return true
}

// Clear removes the stored state.
func (s *StateStore) Clear() {
	if err := s.store.Remove(StateKey); err != nil {
		s.log.WithError(err).Error("failed to clear state")
	}
}
