package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

const (
	keySound     = "sound_enabled"
	keyInstallID = "install_id"
)

// PrefsRepo stores the small set of key/value preferences that outlive a
// session.
type PrefsRepo struct {
	db *sql.DB
}

func (r *PrefsRepo) get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read pref %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PrefsRepo) set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("write pref %s: %w", key, err)
	}
	return nil
}

// SoundEnabled reports the saved sound preference. Defaults to on.
func (r *PrefsRepo) SoundEnabled() (bool, error) {
	value, ok, err := r.get(keySound)
	if err != nil {
		return true, err
	}
	if !ok {
		return true, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return true, fmt.Errorf("parse pref %s: %w", keySound, err)
	}
	return enabled, nil
}

// SetSoundEnabled persists the sound preference.
func (r *PrefsRepo) SetSoundEnabled(enabled bool) error {
	return r.set(keySound, strconv.FormatBool(enabled))
}

// InstallID returns the stable per-install identifier, creating one on
// first use.
func (r *PrefsRepo) InstallID() (string, error) {
	id, ok, err := r.get(keyInstallID)
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}
	id = uuid.NewString()
	if err := r.set(keyInstallID, id); err != nil {
		return "", err
	}
	return id, nil
}
