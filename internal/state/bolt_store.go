package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	resultsBucket  = "posted_results"
	pregamesBucket = "posted_pregames"
	metaBucket     = "meta"

	lastScoreboardKey = "lastScoreboardDate"
)

// boltStore implements a Store backed by BoltDB.
type boltStore struct {
	db *bolt.DB
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{resultsBucket, pregamesBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	return &boltStore{db: db}, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Load assembles the document from the id buckets and the meta bucket.
func (b *boltStore) Load() (State, error) {
	var st State
	if b == nil || b.db == nil {
		return st, nil
	}

	err := b.db.View(func(tx *bolt.Tx) error {
		var err error
		if st.PostedResultIDs, err = readIDs(tx, resultsBucket); err != nil {
			return err
		}
		if st.PostedPregameIDs, err = readIDs(tx, pregamesBucket); err != nil {
			return err
		}
		meta := tx.Bucket([]byte(metaBucket))
		if meta == nil {
			return fmt.Errorf("bucket %q missing", metaBucket)
		}
		st.LastScoreboardDate = string(meta.Get([]byte(lastScoreboardKey)))
		return nil
	})
	if err != nil {
		return State{}, fmt.Errorf("load state: %w", err)
	}
	return st, nil
}

// Save merges the document into the buckets. Ids are only ever put, never
// deleted, so a save cannot shrink what an earlier run recorded.
func (b *boltStore) Save(st State) error {
	if b == nil || b.db == nil {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		if err := putIDs(tx, resultsBucket, st.PostedResultIDs); err != nil {
			return err
		}
		if err := putIDs(tx, pregamesBucket, st.PostedPregameIDs); err != nil {
			return err
		}
		if st.LastScoreboardDate == "" {
			return nil
		}
		meta := tx.Bucket([]byte(metaBucket))
		if meta == nil {
			return fmt.Errorf("bucket %q missing", metaBucket)
		}
		return meta.Put([]byte(lastScoreboardKey), []byte(st.LastScoreboardDate))
	})
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func readIDs(tx *bolt.Tx, name string) ([]string, error) {
	bucket := tx.Bucket([]byte(name))
	if bucket == nil {
		return nil, fmt.Errorf("bucket %q missing", name)
	}

	var ids []string
	cur := bucket.Cursor()
	for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
		ids = append(ids, string(k))
	}
	return ids, nil
}

func putIDs(tx *bolt.Tx, name string, ids []string) error {
	bucket := tx.Bucket([]byte(name))
	if bucket == nil {
		return fmt.Errorf("bucket %q missing", name)
	}
	for _, id := range ids {
		if err := bucket.Put([]byte(id), []byte{1}); err != nil {
			return err
		}
	}
	return nil
}
