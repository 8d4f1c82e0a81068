// ABOUTME: Badger-backed preference store for small local settings.
// ABOUTME: Holds the active profile selection and a per-install device id.
package prefs

import (
	"errors"
	"fmt"
	"strconv"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
)

const (
	keyActiveProfile = "active_profile"
	keyDeviceID      = "device_id"
)

// ErrNotSet is returned when a preference has no stored value.
var ErrNotSet = errors.New("preference not set")

// Prefs wraps a Badger key-value store for local preferences.
type Prefs struct {
	db *badger.DB
}

// Open opens or creates the preference store at the given directory.
func Open(dir string) (*Prefs, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open prefs store: %w", err)
	}
	return &Prefs{db: db}, nil
}

// Close closes the underlying store.
func (p *Prefs) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// ActiveProfile returns the selected profile id, or ErrNotSet.
func (p *Prefs) ActiveProfile() (int64, error) {
	raw, err := p.get(keyActiveProfile)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse active profile: %w", err)
	}
	return id, nil
}

// SetActiveProfile records the selected profile id.
func (p *Prefs) SetActiveProfile(id int64) error {
	return p.set(keyActiveProfile, strconv.FormatInt(id, 10))
}

// ClearActiveProfile removes the selection, e.g. after profile delete.
func (p *Prefs) ClearActiveProfile() error {
	err := p.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyActiveProfile))
	})
	if err != nil {
		return fmt.Errorf("clear active profile: %w", err)
	}
	return nil
}

// DeviceID returns the stable per-install identifier, minting one on
// first access.
func (p *Prefs) DeviceID() (string, error) {
	id, err := p.get(keyDeviceID)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotSet) {
		return "", err
	}

	id = uuid.New().String()
	if err := p.set(keyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}

func (p *Prefs) get(key string) (string, error) {
	var val string
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			val = string(v)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("%s: %w", key, ErrNotSet)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return val, nil
}

func (p *Prefs) set(key, val string) error {
	err := p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(val))
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
