package testutil

import (
	"fmt"
	"testing"

	"stargate-service/internal/infrastructure/persistence"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory SQLite database with every migration applied.
// The database lives until the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := persistence.OpenDatabase(persistence.DriverSQLite, dsn, 1)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = persistence.Close(db)
	})

	require.NoError(t, persistence.Migrate(db, persistence.DriverSQLite))
	return db
}
