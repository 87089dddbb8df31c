package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fichas-crud/cmd/bootstrap"
	"fichas-crud/internal/infra/database/admin"
	"fichas-crud/internal/infra/database/migrations"
	"fichas-crud/internal/infra/database/postgres"
	"fichas-crud/internal/pkg/logger"
)

var errNoDatabase = errors.New("conexão com o banco de dados não inicializada")

type options struct {
	Start             bool
	Stop              bool
	Seed              bool
	Update            bool
	DBCheck           bool
	DBDelete          bool
	DBBackup          bool
	BackupDestination string
	ConfigFile        string
}

func Execute() error {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		return err
	}

	if !opts.anyOperation() {
		fmt.Println("Nenhuma operação informada. Use --help para listar as opções disponíveis.")
		return nil
	}

	v := viper.GetViper()
	found, err := bootstrap.Environment(v, opts.ConfigFile)
	if err != nil {
		return err
	}
	settings, err := bootstrap.LoadSettings(v)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Env: settings.Env, Level: settings.LogLevel})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if found {
		log.Info("[BOOTSTRAP-ENV] Configuração de ambiente carregada.", zap.String("file", v.ConfigFileUsed()))
	} else {
		log.Warn("[BOOTSTRAP-ENV] configs.json não encontrado; usando padrões e variáveis de ambiente.")
	}

	if opts.Stop {
		if err := stopServer(); err != nil {
			return fmt.Errorf("falha ao parar servidor: %w", err)
		}
		log.Info("Servidor finalizado com sucesso.")
		return nil
	}

	return run(context.Background(), opts, settings, log)
}

func run(ctx context.Context, opts options, settings bootstrap.Settings, log *zap.Logger) error {
	var db *gorm.DB
	if opts.requiresDatabase() {
		conn, err := postgres.Open(ctx, settings.Postgres, log)
		if err != nil {
			return err
		}
		db = conn
		defer postgres.Close(db, log)
	}

	if err := runDatabaseOperations(ctx, opts, db, log); err != nil {
		return err
	}

	if opts.DBBackup {
		if opts.BackupDestination == "" {
			return fmt.Errorf("para executar o backup informe o destino com --local=<caminho>")
		}

		dest := opts.BackupDestination
		if !filepath.IsAbs(dest) {
			if abs, err := filepath.Abs(dest); err == nil {
				dest = abs
			}
		}

		if err := admin.Backup(ctx, admin.BackupOptions{Destination: dest, Connection: settings.Postgres}); err != nil {
			return fmt.Errorf("falha ao executar backup: %w", err)
		}
		log.Info("Backup gerado", zap.String("destination", dest))
	}

	if opts.Start {
		if err := startServer(settings, log); err != nil {
			return fmt.Errorf("falha ao iniciar servidor: %w", err)
		}
	}

	return nil
}

// runDatabaseOperations executa, nessa ordem, seed, update, check e delete.
func runDatabaseOperations(ctx context.Context, opts options, db *gorm.DB, log *zap.Logger) error {
	if !opts.requiresDatabase() {
		return nil
	}
	if db == nil {
		return errNoDatabase
	}

	manager := migrations.NewManager(db, log)

	if opts.Seed {
		n, err := manager.ApplySeed(ctx)
		if err != nil {
			return fmt.Errorf("falha ao aplicar migrations de seed: %w", err)
		}
		log.Info("Migrations de seed aplicadas com sucesso.", zap.Int("applied", n))
	}

	if opts.Update {
		n, err := manager.ApplyUpdate(ctx)
		if err != nil {
			return fmt.Errorf("falha ao aplicar migrations de atualização: %w", err)
		}
		log.Info("Migrations de atualização aplicadas com sucesso.", zap.Int("applied", n))
	}

	if opts.DBCheck {
		status, err := admin.Check(ctx, db)
		if err != nil {
			return fmt.Errorf("falha ao checar banco de dados: %w", err)
		}
		log.Info("Banco de dados ativo.",
			zap.Strings("tables", status.Tables),
			zap.Int64("fichas", status.Fichas),
		)
	}

	if opts.DBDelete {
		if err := admin.DeleteAll(ctx, db); err != nil {
			return fmt.Errorf("falha ao deletar tabelas do banco: %w", err)
		}
		log.Info("Todas as tabelas foram removidas com sucesso.")
	}

	return nil
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("fichas-crud", pflag.ContinueOnError)
	fs.BoolVar(&opts.Start, "start", false, "Inicia o servidor HTTP")
	fs.BoolVar(&opts.Stop, "stop", false, "Finaliza o servidor HTTP")
	fs.BoolVar(&opts.Seed, "migration-seed", false, "Aplica migrations de seed")
	fs.BoolVar(&opts.Update, "migration-update", false, "Aplica migrations de atualização")
	fs.BoolVar(&opts.DBCheck, "db-check", false, "Checa status do banco de dados")
	fs.BoolVar(&opts.DBDelete, "db-delete", false, "Remove todas as tabelas do banco de dados")
	fs.BoolVar(&opts.DBBackup, "db-backup", false, "Realiza backup do banco de dados")
	fs.StringVar(&opts.BackupDestination, "local", "", "Diretório de destino para o backup do banco")
	fs.StringVar(&opts.ConfigFile, "config", "", "Caminho do arquivo de configuração (padrão: ./configs.json)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("argumentos não reconhecidos: %v", fs.Args())
	}

	return opts, nil
}

func (o options) anyOperation() bool {
	return o.Start || o.Stop || o.Seed || o.Update || o.DBCheck || o.DBDelete || o.DBBackup
}

func (o options) requiresDatabase() bool {
	return o.Seed || o.Update || o.DBCheck || o.DBDelete
}
