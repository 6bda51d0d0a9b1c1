// Package store connects to the data store that persists the timer snapshot,
// settings, theme, and checklist
package store

import (
	"bytes"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
)

const storageBucket = "storage"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is the pomodoro widget already running? Only one instance can use the database at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the database",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

// Get retrieves a copy of the document stored under key.
func (c *Client) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(storageBucket)).Get([]byte(key))
		if v != nil {
			// bolt values are only valid for the life of the transaction
			value = bytes.Clone(v)
		}

		return nil
	})

	return value, err
}

// Put stores value under key.
func (c *Client) Put(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(storageBucket)).Put([]byte(key), value)
	})
}

// Delete removes the document stored under key.
func (c *Client) Delete(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(storageBucket)).Delete([]byte(key))
	})
}

// Open reopens a closed client at its original path.
func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(storageBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}
