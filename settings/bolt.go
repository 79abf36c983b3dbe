package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

// Bolt is a Store backed by a bbolt database. Groups map to nested buckets.
type Bolt struct {
	db *bbolt.DB
}

// NewBolt opens (or creates) the database at path.
func NewBolt(path string, timeout time.Duration) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("could not open settings database: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Value(k string) (string, bool) {
	parts, err := split(k)
	if err != nil || len(parts) < 2 {
		return "", false
	}

	var (
		value string
		found bool
	)
	_ = b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(parts[0]))
		for _, group := range parts[1 : len(parts)-1] {
			if bucket == nil {
				return nil
			}
			bucket = bucket.Bucket([]byte(group))
		}
		if bucket == nil {
			return nil
		}

		if v := bucket.Get([]byte(parts[len(parts)-1])); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	return value, found
}

func (b *Bolt) SetValue(k, value string) error {
	parts, err := split(k)
	if err != nil {
		return err
	}
	if len(parts) == 1 {
		return fmt.Errorf("%w: %q has no group", ErrInvalidKey, k)
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(parts[0]))
		if err != nil {
			return err
		}
		for _, group := range parts[1 : len(parts)-1] {
			if bucket, err = bucket.CreateBucketIfNotExists([]byte(group)); err != nil {
				return err
			}
		}
		return bucket.Put([]byte(parts[len(parts)-1]), []byte(value))
	})
}

func (b *Bolt) Remove(k string) error {
	parts, err := split(k)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		if len(parts) == 1 {
			err := tx.DeleteBucket([]byte(parts[0]))
			if errors.Is(err, bbolt.ErrBucketNotFound) {
				return nil
			}
			return err
		}

		bucket := tx.Bucket([]byte(parts[0]))
		for _, group := range parts[1 : len(parts)-1] {
			if bucket == nil {
				return nil
			}
			bucket = bucket.Bucket([]byte(group))
		}
		if bucket == nil {
			return nil
		}

		name := []byte(parts[len(parts)-1])
		if bucket.Bucket(name) != nil {
			return bucket.DeleteBucket(name)
		}
		return bucket.Delete(name)
	})
}

func (b *Bolt) All() (map[string]string, error) {
	all := make(map[string]string)

	var walk func(prefix []string, bucket *bbolt.Bucket) error
	walk = func(prefix []string, bucket *bbolt.Bucket) error {
		return bucket.ForEach(func(k, v []byte) error {
			path := append(append([]string{}, prefix...), string(k))
			if v == nil {
				return walk(path, bucket.Bucket(k))
			}
			all[strings.Join(path, "/")] = string(v)
			return nil
		})
	}

	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, bucket *bbolt.Bucket) error {
			return walk([]string{string(name)}, bucket)
		})
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
