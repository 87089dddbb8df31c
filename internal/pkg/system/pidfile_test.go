package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPIDFileRoundTrip(t *testing.T) {
	pf := NewPIDFile(filepath.Join(t.TempDir(), "run", "server.pid"))

	require.NoError(t, pf.Save(4242))

	pid, err := pf.Load()
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)

	err = pf.Save(1)
	assert.ErrorIs(t, err, ErrPIDFileExists)

	pf.Remove()
	_, err = os.Stat(pf.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestPIDFileLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewPIDFile(filepath.Join(dir, "missing.pid")).Load()
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.pid")
	require.NoError(t, os.WriteFile(bad, []byte("abc"), 0o644))
	_, err = NewPIDFile(bad).Load()
	assert.Error(t, err)
}

func TestPIDFileEmptyPath(t *testing.T) {
	assert.Error(t, PIDFile{}.Save(1))
	PIDFile{}.Remove()
}
