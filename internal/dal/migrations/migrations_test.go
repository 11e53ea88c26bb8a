package migrations

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) *bbolt.DB {
	t.Helper()

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestRunMigrations_EmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db, slog.New(slog.DiscardHandler)))

	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte("migrations"))
		require.NotNil(t, b, "migrations bucket not created")

		for _, m := range registered() {
			record := b.Get([]byte(fmt.Sprintf("v%d", m.Version())))
			assert.NotNilf(t, record, "migration %d not found in database", m.Version())
		}
		return nil
	})
	require.NoError(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	log := slog.New(slog.DiscardHandler)

	require.NoError(t, RunMigrations(db, log), "first run")
	first, err := AppliedVersions(db)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, log), "second run")
	second, err := AppliedVersions(db)
	require.NoError(t, err)

	assert.Len(t, second, len(registered()))
	assert.Equal(t, first, second, "second run must not re-apply migrations")
}

func TestRunMigrations_CreatesDocumentsBucket(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db, slog.New(slog.DiscardHandler)))

	err := db.View(func(tx *bbolt.Tx) error {
		assert.NotNil(t, tx.Bucket([]byte("migrations")), "migrations bucket")
		assert.NotNil(t, tx.Bucket([]byte("documents")), "documents bucket (v2)")
		return nil
	})
	require.NoError(t, err)
}

type failingMigration struct{}

func (failingMigration) Version() int        { return 99 }
func (failingMigration) Description() string { return "always fails" }
func (failingMigration) Up(*bbolt.DB) error  { return errors.New("boom") }

func TestRunMigrations_FailedMigrationIsNotRecorded(t *testing.T) {
	db := openTestDB(t)

	err := runMigrations(db, append(registered(), failingMigration{}), slog.New(slog.DiscardHandler))
	require.ErrorContains(t, err, "migration v99 failed")

	applied, err := AppliedVersions(db)
	require.NoError(t, err)
	assert.NotContains(t, applied, 99)
	assert.Contains(t, applied, 1)
	assert.Contains(t, applied, 2)
}
