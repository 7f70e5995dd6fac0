package storage

import (
	"fmt"
	"io/fs"

	bolt "go.etcd.io/bbolt"
)

type BoltMedium struct {
	Db         *bolt.DB
	BucketName string
}

func NewBoltMedium(file string, mode fs.FileMode, bucketName string) (*BoltMedium, error) {
	db, err := bolt.Open(file, mode, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &BoltMedium{
		Db:         db,
		BucketName: bucketName,
	}, nil
}

func (m *BoltMedium) Get(key string) (string, bool) {
	var value string
	found := false
	err := m.Db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(m.BucketName))
		if b == nil {
			return fmt.Errorf("bucket with name %s doesn't exist", m.BucketName)
		}

		raw := b.Get([]byte(key))
		if raw == nil {
			return nil
		}

		value = string(raw)
		found = true
		return nil
	})
	if err != nil {
		return "", false
	}
	return value, found
}

func (m *BoltMedium) Set(key, value string) error {
	return m.Db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(m.BucketName))
		if b == nil {
			return fmt.Errorf("bucket with name %s doesn't exist", m.BucketName)
		}

		return b.Put([]byte(key), []byte(value))
	})
}

func (m *BoltMedium) Remove(key string) error {
	return m.Db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(m.BucketName))
		if b == nil {
			return fmt.Errorf("bucket with name %s doesn't exist", m.BucketName)
		}

		return b.Delete([]byte(key))
	})
}

func (m *BoltMedium) Close() error {
	return m.Db.Close()
}
