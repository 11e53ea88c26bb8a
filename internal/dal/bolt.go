package dal

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/dal/migrations"
)

const (
	documentsBucket  = "documents"
	usersDocumentKey = "users"

	defaultBoltLockTimeout = 5 * time.Second
)

// BoltStorage keeps the users document as a single value in a bbolt database.
// The database is opened for every operation, so the bot and the scheduled
// digest run can share the file; bolt's file lock serializes writers.
type BoltStorage struct {
	path        string
	lockTimeout time.Duration
}

func NewBoltStorage(path string, log *slog.Logger) (*BoltStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd // directory permissions
		return nil, fmt.Errorf("create dir for bolt db: %w", err)
	}

	res := &BoltStorage{
		path:        path,
		lockTimeout: defaultBoltLockTimeout,
	}

	db, err := res.open(false)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := migrations.RunMigrations(db, log.With("component", "migrations")); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return res, nil
}

// WithLockTimeout returns a copy that waits at most d for the database file lock.
func (s *BoltStorage) WithLockTimeout(d time.Duration) *BoltStorage {
	cpy := *s
	cpy.lockTimeout = d
	return &cpy
}

func (s *BoltStorage) Read() ([]byte, error) {
	db, err := s.open(true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var res []byte
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(documentsBucket))
		if b == nil {
			return ErrNotFound
		}
		data := b.Get([]byte(usersDocumentKey))
		if data == nil {
			return ErrNotFound
		}
		// data is only valid inside the transaction
		res = bytes.Clone(data)
		return nil
	})

	return res, err //nolint:wrapcheck // ErrNotFound must stay unwrapped for callers
}

func (s *BoltStorage) Write(data []byte) error {
	db, err := s.open(false)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(documentsBucket))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		if err := b.Put([]byte(usersDocumentKey), data); err != nil {
			return fmt.Errorf("put users document: %w", err)
		}
		return nil
	})
}

func (s *BoltStorage) open(readOnly bool) (*bbolt.DB, error) {
	db, err := bbolt.Open(s.path, 0o600, &bbolt.Options{ //nolint:mnd // file permissions
		Timeout:  s.lockTimeout,
		ReadOnly: readOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("open bolt db=%s: %w", s.path, err)
	}
	return db, nil
}
