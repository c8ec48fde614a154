package model

// Medico is the physician entity, the only authenticated principal in the
// system and a managed resource itself.
type Medico struct {
	ID            int64  `db:"id" json:"id"`
	Nome          string `db:"nome" json:"nome"`
	Especialidade string `db:"especialidade" json:"especialidade"`
	CRM           string `db:"crm" json:"crm"`
	Email         string `db:"email" json:"email"`
	SenhaHash     string `db:"senha_hash" json:"-"`
	Ativo         bool   `db:"ativo" json:"ativo"`
}

type CreateMedicoRequest struct {
	Nome          string `json:"nome" binding:"required,min=2,max=100"`
	Especialidade string `json:"especialidade" binding:"required,min=2,max=100"`
	CRM           string `json:"crm" binding:"required,min=4,max=20"`
	Email         string `json:"email" binding:"required,email,max=255"`
	Senha         string `json:"senha" binding:"required,min=4,max=100"`
}

// UpdateMedicoRequest carries the self-service partial update. Only fields
// present in the body are applied; nil means leave untouched.
type UpdateMedicoRequest struct {
	Nome          *string `json:"nome" binding:"omitempty,min=2,max=100"`
	Especialidade *string `json:"especialidade" binding:"omitempty,min=2,max=100"`
	Email         *string `json:"email" binding:"omitempty,email,max=255"`
	Senha         *string `json:"senha" binding:"omitempty,min=4,max=100"`
}

type UpdateMedicoStatusRequest struct {
	Ativo *bool `json:"ativo" binding:"required"`
}
