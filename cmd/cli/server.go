package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"fichas-crud/cmd/bootstrap"
	"fichas-crud/internal/pkg/system"
)

const pidPath = "run/server.pid"

func startServer(settings bootstrap.Settings, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, settings, log)
	if err != nil {
		return fmt.Errorf("não foi possível criar a aplicação: %w", err)
	}
	defer app.Close()

	pidFile := system.NewPIDFile(pidPath)
	if err := pidFile.Save(os.Getpid()); err != nil {
		return err
	}
	defer pidFile.Remove()

	return app.Start(ctx)
}

func stopServer() error {
	pidFile := system.NewPIDFile(pidPath)
	pid, err := pidFile.Load()
	if err != nil {
		return err
	}

	if err := system.TerminateProcess(pid); err != nil {
		return err
	}

	pidFile.Remove()
	return nil
}
