package storage

import (
	"encoding/json"
	"log"

	bolt "go.etcd.io/bbolt"
)

var snapshotBucket = []byte("snapshots")

// Bolt is a file-backed Store over a single bbolt bucket.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the snapshot database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string, v any) (bool, error) {
	var raw []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(snapshotBucket).Get([]byte(key)); data != nil {
			raw = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// Corrupt snapshot: fall back to defaults rather than failing startup.
		log.Printf("⚠️ Discarding corrupt snapshot for key %q: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (b *Bolt) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotBucket).Put([]byte(key), data)
	})
}

func (b *Bolt) Delete(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotBucket).Delete([]byte(key))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

// Path returns the location of the underlying database file.
func (b *Bolt) Path() string {
	return b.db.Path()
}
