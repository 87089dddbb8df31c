package ficha

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNilDatabase = errors.New("database connection cannot be nil")

// UseFicha agrupa todas as camadas (Repository, Service, Controller)
type UseFicha struct {
	Repository Repository
	Service    Service
	Controller Controller
}

// New monta as camadas de ficha sobre a conexão recebida. Cada chamada
// produz instâncias independentes, sem estado global.
func New(db *gorm.DB, opts Options, logger *zap.Logger) (*UseFicha, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	repository := NewRepository(db)
	service := NewService(repository, opts)
	return &UseFicha{
		Repository: repository,
		Service:    service,
		Controller: NewController(service, logger),
	}, nil
}
