package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Constantes para os modos SSL permitidos no PostgreSQL
const (
	SSLDisable    = "disable"
	SSLRequire    = "require"
	SSLVerifyFull = "verify-full"
	SSLVerifyCA   = "verify-ca"
)

const defaultDBName = "fichas_db"

// Config reúne os parâmetros de conexão e do pool.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Debug liga o log de SQL do GORM.
	Debug bool
}

// Open abre o pool de conexões e valida o acesso com um ping. O *gorm.DB
// retornado deve ser repassado explicitamente a quem precisar dele e
// encerrado com Close.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	logLevel := gormLogger.Warn
	if cfg.Debug {
		logLevel = gormLogger.Info
	}

	db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		DriverName: "pgx",
		DSN:        BuildDSN(cfg, logger),
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter *sql.DB do GORM: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("erro ao testar conexão com o banco de dados: %w", err)
	}

	logger.Info("[DATABASE] Conexão GORM com PostgreSQL estabelecida com sucesso.",
		zap.String("host", cfg.Host),
		zap.String("db_name", cfg.DBName),
	)
	return db, nil
}

// Close encerra o pool subjacente.
func Close(db *gorm.DB, logger *zap.Logger) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("[DATABASE] erro ao obter *sql.DB para fechamento", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("[DATABASE] erro ao fechar conexão com banco", zap.Error(err))
	}
}

// BuildDSN monta a string de conexão (Data Source Name) para o PostgreSQL.
func BuildDSN(cfg Config, logger *zap.Logger) string {
	name := cfg.DBName
	if name == "" {
		name = defaultDBName
	}
	ssl := cfg.SSLMode
	if !isValidSSLMode(ssl) {
		logger.Warn("[DATABASE] Modo SSL inválido, usando o padrão.",
			zap.String("ssl_mode", ssl),
			zap.String("default", SSLDisable),
		)
		ssl = SSLDisable
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, name, ssl,
	)
}

// isValidSSLMode verifica se a string de modo SSL fornecida é um valor válido.
func isValidSSLMode(mode string) bool {
	switch mode {
	case SSLDisable, SSLRequire, SSLVerifyFull, SSLVerifyCA:
		return true
	default:
		return false
	}
}
