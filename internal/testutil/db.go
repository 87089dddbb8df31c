// Package testutil reúne helpers compartilhados pelos testes.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"fichas-crud/internal/cadastro/domain/model"
)

// OpenDB abre um SQLite em memória com a tabela fichas criada. O pool fica
// limitado a uma conexão para que todas as consultas vejam o mesmo banco.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("falha ao obter *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.Ficha{}); err != nil {
		t.Fatalf("falha ao criar tabela fichas: %v", err)
	}
	return db
}

// CloseDB fecha o pool antes do fim do teste, simulando queda do banco.
func CloseDB(t testing.TB, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("falha ao obter *sql.DB: %v", err)
	}
	_ = sqlDB.Close()
}

func CountFichas(t testing.TB, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Ficha{}).Count(&n).Error; err != nil {
		t.Fatalf("falha ao contar fichas: %v", err)
	}
	return n
}
