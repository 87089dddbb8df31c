package bootstrap

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fichas-crud/cmd/server"
	"fichas-crud/cmd/server/routes"
	"fichas-crud/internal/cadastro/domain/ficha"
	"fichas-crud/internal/infra/database/postgres"
	"fichas-crud/internal/web/handler"
)

const shutdownTimeout = 10 * time.Second

// Application armazena as dependências centrais da aplicação.
type Application struct {
	settings Settings
	logger   *zap.Logger
	db       *gorm.DB
	server   *server.HTTPServer
}

// New prepara a aplicação (db, di, rotas) e retorna a instância.
func New(ctx context.Context, settings Settings, logger *zap.Logger) (*Application, error) {
	db, err := postgres.Open(ctx, settings.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("[BOOTSTRAP-DATABASE] %w", err)
	}
	logger.Info("[BOOTSTRAP-DATABASE] Conexão com o banco de dados inicializada.")

	app, err := newApplication(settings, logger, db)
	if err != nil {
		postgres.Close(db, logger)
		return nil, err
	}
	return app, nil
}

func newApplication(settings Settings, logger *zap.Logger, db *gorm.DB) (*Application, error) {
	useFicha, err := ficha.New(db, settings.Fichas, logger)
	if err != nil {
		return nil, fmt.Errorf("[BOOTSTRAP-DI] %w", err)
	}

	web, err := handler.NewWebHandler(logger)
	if err != nil {
		return nil, fmt.Errorf("[BOOTSTRAP-WEB] %w", err)
	}

	router, err := routes.SetupRouter(routes.Deps{
		Env:         settings.Env,
		CORSOrigins: settings.CORSOrigins,
		Logger:      logger,
		Ficha:       useFicha.Controller,
		Web:         web,
	})
	if err != nil {
		return nil, fmt.Errorf("[BOOTSTRAP-ROUTES] %w", err)
	}
	logger.Info("[BOOTSTRAP-DI] Contêiner de dependências inicializado.",
		zap.Bool("batch_atomic", settings.Fichas.AtomicBatch),
		zap.Bool("strict_status", settings.Fichas.StrictStatus),
	)

	return &Application{
		settings: settings,
		logger:   logger,
		db:       db,
		server:   server.NewHTTPServer(settings.HTTPPort, router, logger),
	}, nil
}

// Start bloqueia até ctx ser cancelado ou o servidor falhar.
func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("[BOOTSTRAP] Iniciando servidor", zap.String("env", a.settings.Env))

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case <-a.server.Ready():
		a.startTunnel(ctx, a.server.Addr())
	case err := <-errCh:
		return err
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("falha ao encerrar servidor: %w", err)
		}
		return <-errCh

	case err := <-errCh:
		return err
	}
}

func (a *Application) startTunnel(ctx context.Context, addr net.Addr) {
	if !a.settings.NgrokLive {
		return
	}
	if a.settings.NgrokToken == "" {
		a.logger.Warn("[NGROK] test.ngrok.live=true mas test.ngrok.token está vazio; ngrok NÃO será iniciado")
		return
	}

	port := 0
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	} else if p, err := strconv.Atoi(a.settings.HTTPPort); err == nil {
		port = p
	}

	go func() {
		if err := startNgrokForward(ctx, a.settings.NgrokToken, port, a.logger); err != nil {
			a.logger.Error("[NGROK] erro", zap.Error(err))
		}
	}()
}

// Close libera a conexão com o banco.
func (a *Application) Close() {
	postgres.Close(a.db, a.logger)
}
