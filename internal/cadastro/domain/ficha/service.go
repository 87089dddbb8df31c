package ficha

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"fichas-crud/internal/cadastro/domain/model"

	"github.com/go-playground/validator/v10"
)

// Options controla as políticas do serviço.
type Options struct {
	// AtomicBatch valida o lote inteiro antes de gravar e insere tudo em uma
	// transação. Desligado, cada ficha é validada e gravada em sequência e
	// as anteriores à primeira inválida permanecem no banco.
	AtomicBatch bool
	// StrictStatus restringe status ao conjunto model.AllStatuses.
	StrictStatus bool
}

type Service interface {
	Create(ctx context.Context, fichas []model.Ficha) ([]model.Ficha, error)
	Read(ctx context.Context, id int64) (model.Ficha, error)
	List(ctx context.Context) ([]model.Ficha, error)
	Update(ctx context.Context, ficha model.Ficha) (model.Ficha, error)
	Delete(ctx context.Context, ids []int64) (int64, error)
}

type serviceImpl struct {
	Repository Repository
	opts       Options
	validate   *validator.Validate
}

func NewService(repository Repository, opts Options) Service {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &serviceImpl{
		Repository: repository,
		opts:       opts,
		validate:   v,
	}
}

func (s *serviceImpl) Create(ctx context.Context, fichas []model.Ficha) ([]model.Ficha, error) {
	if len(fichas) == 0 {
		return nil, ErrInvalidInput
	}

	if !s.opts.AtomicBatch {
		return s.createSequential(ctx, fichas)
	}

	toCreate := make([]model.Ficha, len(fichas))
	for i, f := range fichas {
		f.ID = 0
		if err := s.check(i, f); err != nil {
			return nil, err
		}
		toCreate[i] = f
	}
	return s.Repository.CreateBatch(ctx, toCreate)
}

// createSequential devolve as fichas já gravadas junto com o erro que
// interrompeu o lote.
func (s *serviceImpl) createSequential(ctx context.Context, fichas []model.Ficha) ([]model.Ficha, error) {
	created := make([]model.Ficha, 0, len(fichas))
	for i, f := range fichas {
		f.ID = 0
		if err := s.check(i, f); err != nil {
			return created, err
		}
		c, err := s.Repository.Create(ctx, f)
		if err != nil {
			return created, err
		}
		created = append(created, c)
	}
	return created, nil
}

func (s *serviceImpl) Read(ctx context.Context, id int64) (model.Ficha, error) {
	return s.Repository.Read(ctx, id)
}

func (s *serviceImpl) List(ctx context.Context) ([]model.Ficha, error) {
	return s.Repository.List(ctx)
}

func (s *serviceImpl) Update(ctx context.Context, ficha model.Ficha) (model.Ficha, error) {
	if err := s.check(-1, ficha); err != nil {
		return model.Ficha{}, err
	}
	return s.Repository.Update(ctx, ficha)
}

func (s *serviceImpl) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrInvalidInput
	}
	return s.Repository.Delete(ctx, ids)
}

// check confirma a presença dos quatro campos. O formato do CPF não é
// verificado aqui.
func (s *serviceImpl) check(index int, f model.Ficha) error {
	var fields []FieldError

	if err := s.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}

	if s.opts.StrictStatus && f.Status != "" && !model.IsKnownStatus(f.Status) {
		fields = append(fields, FieldError{Field: "status", Rule: "oneof"})
	}

	if len(fields) > 0 {
		return &ValidationError{Index: index, Fields: fields}
	}
	return nil
}
