package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/ui"
	bolt "go.etcd.io/bbolt"
	"os"
	"path/filepath"
	"time"
)

const (
	BucketLoopSettings = "loopSettings"
	BucketTrends       = "trends"
)

// LoopSettings are the operator adjustable settings of a loop that survive a restart
type LoopSettings struct {
	Tuning        pid.Tuning `json:"tuning"`
	TrendInterval int        `json:"trendInterval"`
	SavedAt       time.Time  `json:"savedAt"`
}

type Persistence interface {
	Init() error

	LoadLoopSettings(loopId string) (LoopSettings, error)
	SaveLoopSettings(loopId string, settings LoopSettings) (err error)
	DeleteLoopSettings(loopId string) (err error)

	// LoadTrend returns the last saved trend of the given loop, newest sample first
	LoadTrend(loopId string) ([]trend.Sample, error)
	SaveTrend(loopId string, pens []trend.Sample) (err error)
	DeleteTrend(loopId string) (err error)
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	// get parent path of dbPath
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		// create directory
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SaveLoopSettings saves the tuning of the given loop to persistence
func (p persistence) SaveLoopSettings(loopId string, settings LoopSettings) (err error) {
	return p.save(BucketLoopSettings, loopId, settings)
}

// LoadLoopSettings loads the tuning of the given loop from persistence
func (p persistence) LoadLoopSettings(loopId string) (LoopSettings, error) {
	var settings LoopSettings
	err := p.load(BucketLoopSettings, loopId, &settings)
	return settings, err
}

func (p persistence) DeleteLoopSettings(loopId string) error {
	return p.delete(BucketLoopSettings, loopId)
}

// SaveTrend saves the trend of the given loop to persistence
func (p persistence) SaveTrend(loopId string, pens []trend.Sample) (err error) {
	return p.save(BucketTrends, loopId, pens)
}

// LoadTrend loads the trend of the given loop from persistence
func (p persistence) LoadTrend(loopId string) ([]trend.Sample, error) {
	var pens []trend.Sample
	err := p.load(BucketTrends, loopId, &pens)
	return pens, err
}

func (p persistence) DeleteTrend(loopId string) error {
	return p.delete(BucketTrends, loopId)
}

func (p persistence) save(bucket string, key string, value interface{}) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		err = b.Put([]byte(key), data)
		return err
	})
}

// load decodes the value stored for key into target.
// Returns os.ErrNotExist if there is no (valid) value.
func (p persistence) load(bucket string, key string, target interface{}) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	corrupt := false
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(key))
		if v == nil {
			return os.ErrNotExist
		}

		err := json.Unmarshal(v, target)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved %s data for %s: %v", bucket, key, err)
			corrupt = true
			err := b.Delete([]byte(key))
			if err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", key, err)
			}
			return nil
		}

		return nil
	})
	if err == nil && corrupt {
		return os.ErrNotExist
	}
	return err
}

func (p persistence) delete(bucket string, key string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			// no bucket yet
			return nil
		}
		v := b.Get([]byte(key))
		if v == nil {
			// no data for given key
			return nil
		}

		return b.Delete([]byte(key))
	})
}
