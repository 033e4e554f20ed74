package database

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Equal(t, len(ups), len(downs))
}

func TestMigrate(t *testing.T) {
	url := os.Getenv("EDU_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("EDU_TEST_DATABASE_URL not set")
	}
	db, err := Open(url)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// second run finds nothing to do
	require.NoError(t, Migrate(db))
}
