package admin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fichas-crud/internal/infra/database/postgres"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, "p", detectFormat("backup.SQL"))
	assert.Equal(t, "t", detectFormat("/tmp/backup.tar"))
	assert.Equal(t, "c", detectFormat("backup.dump"))
	assert.Equal(t, "c", detectFormat("backup"))
}

func TestNormalizeDestination(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x", "..", "backup.sql")
	assert.Equal(t, filepath.Clean(abs), normalizeDestination(abs))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "backups", "b.sql"), normalizeDestination("backups/./b.sql"))
}

func TestDumpArgs(t *testing.T) {
	args := dumpArgs(postgres.Config{Host: "db", Port: "5432", User: "postgres", DBName: "fichas_db"}, "/tmp/b.tar")
	assert.Equal(t, []string{"-h", "db", "-p", "5432", "-U", "postgres", "-d", "fichas_db", "-F", "t", "-f", "/tmp/b.tar"}, args)
}

func TestBackupValidatesOptions(t *testing.T) {
	err := Backup(context.Background(), BackupOptions{})
	assert.Error(t, err)

	err = Backup(context.Background(), BackupOptions{Destination: filepath.Join(t.TempDir(), "b.sql")})
	assert.ErrorContains(t, err, "nome do banco")
}
