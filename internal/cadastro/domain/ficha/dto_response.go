package ficha

import "fichas-crud/internal/cadastro/domain/model"

type FichaResponseDto struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Maria"`
	CPF         string `json:"cpf" example:"12345678901"`
	Description string `json:"description" example:"Primeiro contato"`
	Status      string `json:"status" example:"Lead"`
}

type DeleteFichasResponseDto struct {
	Message string `json:"message" example:"Fichas deletadas com sucesso."`
	Deleted int64  `json:"deleted" example:"1"`
}

func ToResponse(f model.Ficha) FichaResponseDto {
	return FichaResponseDto{
		ID:          f.ID,
		Name:        f.Name,
		CPF:         f.CPF,
		Description: f.Description,
		Status:      f.Status,
	}
}

// ToResponseList sempre devolve um slice não nulo, serializado como [].
func ToResponseList(fichas []model.Ficha) []FichaResponseDto {
	resp := make([]FichaResponseDto, len(fichas))
	for i, f := range fichas {
		resp[i] = ToResponse(f)
	}
	return resp
}
