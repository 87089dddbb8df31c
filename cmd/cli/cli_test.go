package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"--start", "--migration-seed", "--config", "/tmp/c.json"})
	require.NoError(t, err)
	assert.True(t, opts.Start)
	assert.True(t, opts.Seed)
	assert.False(t, opts.Stop)
	assert.Equal(t, "/tmp/c.json", opts.ConfigFile)

	opts, err = parseOptions([]string{"--db-backup", "--local=./backup.sql"})
	require.NoError(t, err)
	assert.True(t, opts.DBBackup)
	assert.Equal(t, "./backup.sql", opts.BackupDestination)
}

func TestParseOptionsRejectsUnknown(t *testing.T) {
	_, err := parseOptions([]string{"--nope"})
	assert.Error(t, err)

	_, err = parseOptions([]string{"--start", "extra"})
	assert.Error(t, err)
}

func TestOptionPredicates(t *testing.T) {
	cases := []struct {
		name    string
		opts    options
		any, db bool
	}{
		{"vazio", options{}, false, false},
		{"start", options{Start: true}, true, false},
		{"stop", options{Stop: true}, true, false},
		{"backup", options{DBBackup: true}, true, false},
		{"seed", options{Seed: true}, true, true},
		{"update", options{Update: true}, true, true},
		{"check", options{DBCheck: true}, true, true},
		{"delete", options{DBDelete: true}, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.any, tc.opts.anyOperation())
			assert.Equal(t, tc.db, tc.opts.requiresDatabase())
		})
	}
}

func TestRunDatabaseOperationsWithoutConnection(t *testing.T) {
	err := runDatabaseOperations(context.Background(), options{DBCheck: true}, nil, zap.NewNop())
	assert.ErrorIs(t, err, errNoDatabase)

	assert.NoError(t, runDatabaseOperations(context.Background(), options{Start: true}, nil, zap.NewNop()))
}
