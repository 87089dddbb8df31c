package ficha

import (
	"bytes"
	"encoding/json"
	"errors"

	"fichas-crud/internal/cadastro/domain/model"
)

// FichaRequestDto é o payload de criação e de atualização. A presença dos
// campos é verificada pelo serviço.
type FichaRequestDto struct {
	Name        string `json:"name" example:"Maria"`
	CPF         string `json:"cpf" example:"12345678901"`
	Description string `json:"description" example:"Primeiro contato"`
	Status      string `json:"status" example:"Lead"`
}

func (r FichaRequestDto) toModel() model.Ficha {
	return model.Ficha{
		Name:        r.Name,
		CPF:         r.CPF,
		Description: r.Description,
		Status:      r.Status,
	}
}

type DeleteFichasRequestDto struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

var (
	errMalformedBody = errors.New("malformed body")
	errEmptyBatch    = errors.New("empty batch")
)

// decodeCreateRequest aceita tanto um objeto quanto um array de objetos.
func decodeCreateRequest(body []byte) ([]FichaRequestDto, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errMalformedBody
	}

	switch body[0] {
	case '[':
		var reqs []FichaRequestDto
		if err := json.Unmarshal(body, &reqs); err != nil {
			return nil, errors.Join(errMalformedBody, err)
		}
		if len(reqs) == 0 {
			return nil, errEmptyBatch
		}
		return reqs, nil
	case '{':
		var req FichaRequestDto
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, errors.Join(errMalformedBody, err)
		}
		return []FichaRequestDto{req}, nil
	default:
		return nil, errMalformedBody
	}
}
