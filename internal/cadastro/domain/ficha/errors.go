package ficha

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("ficha not found")
	ErrInvalidInput = errors.New("invalid input data")
)

// FieldError aponta o campo reprovado e a regra que falhou.
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError descreve a primeira ficha reprovada de uma requisição.
// Index é a posição no lote de criação, ou -1 em uma atualização.
type ValidationError struct {
	Index  int
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	if e.Index >= 0 {
		return fmt.Sprintf("ficha %d: campos inválidos: %s", e.Index, strings.Join(names, ", "))
	}
	return "campos inválidos: " + strings.Join(names, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
