package ficha

import (
	"context"
	"errors"
	"fmt"

	"fichas-crud/internal/cadastro/domain/model"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m model.Ficha) (model.Ficha, error)
	CreateBatch(ctx context.Context, fichas []model.Ficha) ([]model.Ficha, error)
	Read(ctx context.Context, id int64) (model.Ficha, error)
	List(ctx context.Context) ([]model.Ficha, error)
	Update(ctx context.Context, m model.Ficha) (model.Ficha, error)
	Delete(ctx context.Context, ids []int64) (int64, error)
}

type implRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &implRepository{db: db}
}

func (r *implRepository) Create(ctx context.Context, m model.Ficha) (model.Ficha, error) {
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		return model.Ficha{}, fmt.Errorf("falha ao inserir ficha: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.Ficha{}, fmt.Errorf("no rows affected")
	}
	return m, nil
}

// CreateBatch insere todas as fichas em uma única transação: ou todas são
// gravadas ou nenhuma.
func (r *implRepository) CreateBatch(ctx context.Context, fichas []model.Ficha) ([]model.Ficha, error) {
	created := make([]model.Ficha, len(fichas))
	copy(created, fichas)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range created {
			if err := tx.Create(&created[i]).Error; err != nil {
				return fmt.Errorf("falha ao inserir ficha %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *implRepository) Read(ctx context.Context, id int64) (model.Ficha, error) {
	var m model.Ficha
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Ficha{}, ErrNotFound
		}
		return model.Ficha{}, fmt.Errorf("erro ao ler ficha: %w", err)
	}
	return m, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Ficha, error) {
	var fichas []model.Ficha
	if err := r.db.WithContext(ctx).Order("id").Find(&fichas).Error; err != nil {
		return nil, fmt.Errorf("erro ao listar fichas: %w", err)
	}
	return fichas, nil
}

// Update substitui todos os campos editáveis da ficha identificada por m.ID.
func (r *implRepository) Update(ctx context.Context, m model.Ficha) (model.Ficha, error) {
	if m.ID <= 0 {
		return model.Ficha{}, ErrInvalidInput
	}

	result := r.db.WithContext(ctx).
		Model(&model.Ficha{}).
		Where("id = ?", m.ID).
		Select("Name", "CPF", "Description", "Status").
		Updates(model.Ficha{
			Name:        m.Name,
			CPF:         m.CPF,
			Description: m.Description,
			Status:      m.Status,
		})
	if result.Error != nil {
		return model.Ficha{}, fmt.Errorf("falha ao atualizar ficha: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		existing, err := r.Read(ctx, m.ID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return model.Ficha{}, ErrNotFound
			}
			return model.Ficha{}, fmt.Errorf("falha ao verificar se a ficha existe: %w", err)
		}
		return existing, nil
	}

	updated, err := r.Read(ctx, m.ID)
	if err != nil {
		return model.Ficha{}, fmt.Errorf("falha ao ler ficha atualizada: %w", err)
	}
	return updated, nil
}

// Delete remove em um único comando todas as fichas cujos ids estejam na
// lista e devolve quantas foram apagadas.
func (r *implRepository) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrInvalidInput
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Ficha{})
	if result.Error != nil {
		return 0, fmt.Errorf("falha ao deletar fichas: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return result.RowsAffected, nil
}
