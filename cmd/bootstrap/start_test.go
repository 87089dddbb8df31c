package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fichas-crud/internal/cadastro/domain/ficha"
	"fichas-crud/internal/testutil"
)

func testSettings() Settings {
	return Settings{
		AppName:     "fichas-crud",
		Env:         "test",
		HTTPPort:    "0",
		CORSOrigins: []string{"*"},
		Fichas:      ficha.Options{AtomicBatch: true},
	}
}

func TestApplicationServesUntilCanceled(t *testing.T) {
	app, err := newApplication(testSettings(), zap.NewNop(), testutil.OpenDB(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Start(ctx) }()

	select {
	case <-app.server.Ready():
	case err := <-done:
		t.Fatalf("servidor encerrou antes de abrir o listener: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não abriu o listener")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/api/fichas", app.server.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("servidor não encerrou")
	}
}

func TestNewApplicationRejectsNilDatabase(t *testing.T) {
	_, err := newApplication(testSettings(), zap.NewNop(), nil)
	assert.ErrorIs(t, err, ficha.ErrNilDatabase)
}
