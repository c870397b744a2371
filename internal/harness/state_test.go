package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStoreLastRunRoundTrip(t *testing.T) {
	store := NewStateStore(t.TempDir())

	last := LastRun{
		Status: "fail",
		Checks: []string{"File Structure", "Dependencies"},
		Failed: []string{"Dependencies"},
	}
	require.NoError(t, store.WriteLastRun(last))

	got, err := store.ReadLastRun()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, last, *got)
}

func TestStateStoreMissingLastRunIsCleanState(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), "never-written"))

	got, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStateStoreOutcomeRoundTripWithSluggedName(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)

	o := Outcome{Check: "CMake Configuration", Passed: false, Note: "cmake configure failed"}
	require.NoError(t, store.WriteOutcome(o))

	// the display name maps to a stable slugged filename
	_, err := os.Stat(filepath.Join(dir, "checks", "cmake-configuration.json"))
	require.NoError(t, err)

	got, err := store.ReadOutcome("CMake Configuration")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, o, *got)
}

func TestStateStoreReset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	store := NewStateStore(dir)
	require.NoError(t, store.WriteLastRun(LastRun{Status: "pass"}))

	require.NoError(t, store.Reset())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
