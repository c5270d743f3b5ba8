package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/fleet?sslmode=disable", DriverURL("postgres://u:p@db:5432/fleet?sslmode=disable"))
	assert.Equal(t, "pgx5://u:p@db/fleet", DriverURL("postgresql://u:p@db/fleet"))
	assert.Equal(t, "pgx5://ya/convertida", DriverURL("pgx5://ya/convertida"))
}

// Cada migración up debe tener su down.
func TestMigracionesEmbebidas_Pares(t *testing.T) {
	ups, err := fs.Glob(files, "sql/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(files, "sql/*.down.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
