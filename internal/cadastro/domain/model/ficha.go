package model

type FichaStatus string

// Status reconhecidos pelo quadro. A API aceita qualquer texto não vazio,
// a menos que o modo estrito esteja ligado.
const (
	StatusLead        FichaStatus = "Lead"
	StatusAguardando  FichaStatus = "Aguardando"
	StatusAtendimento FichaStatus = "Atendimento"
	StatusConcluido   FichaStatus = "Concluído"
	StatusInsucesso   FichaStatus = "Insucesso"
)

// AllStatuses mantém a ordem das colunas exibidas na página.
var AllStatuses = []FichaStatus{
	StatusLead,
	StatusAguardando,
	StatusAtendimento,
	StatusConcluido,
	StatusInsucesso,
}

func IsKnownStatus(s string) bool {
	for _, st := range AllStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

type Ficha struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"type:text;not null" validate:"required"`
	CPF         string `json:"cpf" gorm:"column:cpf;type:text;not null" validate:"required"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	Status      string `json:"status" gorm:"type:text;not null" validate:"required"`
}

func (Ficha) TableName() string {
	return "fichas"
}
