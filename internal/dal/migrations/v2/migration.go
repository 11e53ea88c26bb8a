package v2

import (
	"go.etcd.io/bbolt"
)

// MigrationV2 creates the bucket holding the users document
type MigrationV2 struct{}

func (m *MigrationV2) Version() int {
	return 2 //nolint:mnd // version 2
}

func (m *MigrationV2) Description() string {
	return "Create documents bucket"
}

func (m *MigrationV2) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("documents"))
		return err
	})
}

func New() *MigrationV2 {
	return &MigrationV2{}
}
