// ABOUTME: Tests for the Badger-backed preference store.
// ABOUTME: Verifies active profile selection and device id stability.
package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPrefs(t *testing.T) *Prefs {
	t.Helper()

	p, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestActiveProfileUnset(t *testing.T) {
	p := setupPrefs(t)

	_, err := p.ActiveProfile()
	assert.ErrorIs(t, err, ErrNotSet)
}

func TestSetAndGetActiveProfile(t *testing.T) {
	p := setupPrefs(t)

	require.NoError(t, p.SetActiveProfile(3))

	id, err := p.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestClearActiveProfile(t *testing.T) {
	p := setupPrefs(t)

	require.NoError(t, p.SetActiveProfile(1))
	require.NoError(t, p.ClearActiveProfile())

	_, err := p.ActiveProfile()
	assert.ErrorIs(t, err, ErrNotSet)
}

func TestDeviceIDStable(t *testing.T) {
	p := setupPrefs(t)

	first, err := p.DeviceID()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := p.DeviceID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	p, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, p.SetActiveProfile(7))
	deviceID, err := p.DeviceID()
	require.NoError(t, err)
	require.NoError(t, p.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	id, err := reopened.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	sameDevice, err := reopened.DeviceID()
	require.NoError(t, err)
	assert.Equal(t, deviceID, sameDevice)
}
