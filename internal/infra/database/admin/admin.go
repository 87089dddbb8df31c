package admin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"

	"fichas-crud/internal/infra/database/postgres"
)

const fichasTable = "fichas"

type Status struct {
	Tables    []string
	Fichas    int64
	CheckedAt time.Time
}

// Check confirma que o banco responde e lista as tabelas do schema atual.
// Quando a tabela fichas existe, também conta os registros.
func Check(ctx context.Context, db *gorm.DB) (Status, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Status{}, fmt.Errorf("falha ao obter conexão subjacente: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Status{}, fmt.Errorf("banco de dados indisponível: %w", err)
	}

	tables, err := listTables(ctx, db)
	if err != nil {
		return Status{}, err
	}

	status := Status{Tables: tables, CheckedAt: time.Now()}
	if slices.Contains(tables, fichasTable) {
		if err := db.WithContext(ctx).Table(fichasTable).Count(&status.Fichas).Error; err != nil {
			return Status{}, fmt.Errorf("falha ao contar fichas: %w", err)
		}
	}
	return status, nil
}

func DeleteAll(ctx context.Context, db *gorm.DB) error {
	tables, err := listTables(ctx, db)
	if err != nil {
		return fmt.Errorf("falha ao buscar tabelas para exclusão: %w", err)
	}

	for _, table := range tables {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %q CASCADE", table)
		if err := db.WithContext(ctx).Exec(query).Error; err != nil {
			return fmt.Errorf("falha ao remover tabela %s: %w", table, err)
		}
	}
	return nil
}

func listTables(ctx context.Context, db *gorm.DB) ([]string, error) {
	var tables []string
	err := db.WithContext(ctx).Raw(`
SELECT tablename
FROM pg_catalog.pg_tables
WHERE schemaname = current_schema()
ORDER BY tablename;
        `).Scan(&tables).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tabelas: %w", err)
	}
	return tables, nil
}

type BackupOptions struct {
	Destination string
	Connection  postgres.Config
}

// Backup executa o pg_dump do banco configurado. O formato é escolhido pela
// extensão do destino: .sql (texto), .tar ou custom nos demais casos.
func Backup(ctx context.Context, opts BackupOptions) error {
	if opts.Destination == "" {
		return errors.New("destino do backup não informado (use --local=<caminho>)")
	}

	info := opts.Connection
	if info.DBName == "" {
		return errors.New("nome do banco de dados não configurado")
	}

	destination := normalizeDestination(opts.Destination)
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório do backup: %w", err)
	}

	cmd := exec.CommandContext(ctx, "pg_dump", dumpArgs(info, destination)...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("PGPASSWORD=%s", info.Password))

	if output, err := cmd.CombinedOutput(); err != nil {
		if len(output) > 0 {
			return fmt.Errorf("pg_dump falhou: %w - %s", err, strings.TrimSpace(string(output)))
		}
		return fmt.Errorf("pg_dump falhou: %w", err)
	}

	return nil
}

func dumpArgs(info postgres.Config, destination string) []string {
	return []string{
		"-h", info.Host,
		"-p", info.Port,
		"-U", info.User,
		"-d", info.DBName,
		"-F", detectFormat(destination),
		"-f", destination,
	}
}

func normalizeDestination(path string) string {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		cwd, err := os.Getwd()
		if err == nil {
			return filepath.Join(cwd, clean)
		}
	}
	return clean
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sql":
		return "p"
	case ".tar":
		return "t"
	default:
		return "c"
	}
}
