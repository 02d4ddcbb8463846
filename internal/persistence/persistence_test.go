package persistence

import (
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createPersistence(t *testing.T) (Persistence, string) {
	dbPath := filepath.Join(t.TempDir(), "pid2go.db")
	return NewPersistence(dbPath), dbPath
}

func createSettings() LoopSettings {
	return LoopSettings{
		Tuning: pid.Tuning{
			KP:       1.5,
			KI:       12,
			KD:       0.5,
			FFGain:   -0.3,
			Action:   pid.ActionDirect,
			Equation: pid.EquationParallel,
		},
		TrendInterval: 7,
		SavedAt:       time.Unix(1700000000, 0).UTC(),
	}
}

func TestPersistence_Init_CreatesParentDir(t *testing.T) {
	// GIVEN
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "pid2go.db")
	p := NewPersistence(dbPath)

	// WHEN
	err := p.Init()

	// THEN
	assert.NoError(t, err)
	info, err := os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPersistence_LoadLoopSettings_Missing(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)

	// WHEN
	_, err := p.LoadLoopSettings("loop0")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_SaveAndLoadLoopSettings(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	expected := createSettings()

	// WHEN
	err := p.SaveLoopSettings("loop0", expected)
	require.NoError(t, err)
	result, err := p.LoadLoopSettings("loop0")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, expected.Tuning, result.Tuning)
	assert.Equal(t, expected.TrendInterval, result.TrendInterval)
	assert.True(t, expected.SavedAt.Equal(result.SavedAt))
}

func TestPersistence_DeleteLoopSettings(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	_ = p.SaveLoopSettings("loop0", createSettings())

	// WHEN
	err := p.DeleteLoopSettings("loop0")
	assert.NoError(t, err)

	// THEN
	_, err = p.LoadLoopSettings("loop0")
	assert.Error(t, err)

	// deleting again is not an error
	assert.NoError(t, p.DeleteLoopSettings("loop0"))
}

func TestPersistence_SaveAndLoadTrend(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	pens := []trend.Sample{
		{PV: 50, SP: 50, Out: 30, Load: 0},
		{PV: 48.5, SP: 50, Out: 31, Load: 2},
	}

	// WHEN
	err := p.SaveTrend("loop0", pens)
	require.NoError(t, err)
	result, err := p.LoadTrend("loop0")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, pens, result)

	// WHEN
	require.NoError(t, p.DeleteTrend("loop0"))
	_, err = p.LoadTrend("loop0")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_CorruptDataIsDeleted(t *testing.T) {
	// GIVEN
	p, dbPath := createPersistence(t)
	db, err := bolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketLoopSettings))
		if err != nil {
			return err
		}
		return b.Put([]byte("loop0"), []byte("{not json"))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// WHEN
	_, err = p.LoadLoopSettings("loop0")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)

	db, err = bolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()
	_ = db.View(func(tx *bolt.Tx) error {
		assert.Nil(t, tx.Bucket([]byte(BucketLoopSettings)).Get([]byte("loop0")))
		return nil
	})
}
