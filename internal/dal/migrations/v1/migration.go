package v1

import (
	"errors"

	"go.etcd.io/bbolt"
)

// MigrationV1 marks the migration system as initialized
type MigrationV1 struct{}

func (m *MigrationV1) Version() int {
	return 1
}

func (m *MigrationV1) Description() string {
	return "Bootstrap migration system"
}

// Up verifies the migrations bucket created by the runner is in place
func (m *MigrationV1) Up(db *bbolt.DB) error {
	return db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte("migrations")) == nil {
			return errors.New("migrations bucket not found")
		}
		return nil
	})
}

func New() *MigrationV1 {
	return &MigrationV1{}
}
