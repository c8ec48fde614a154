package model

import "time"

// Paciente is the primary managed resource. List-valued fields live in JSONB
// columns; the sensitive sub-record is a separate row owned by the paciente.
type Paciente struct {
	ID                    int64       `db:"id" json:"id"`
	Nome                  string      `db:"nome" json:"nome"`
	Alergias              StringList  `db:"alergias" json:"alergias"`
	DoencasCronicas       StringList  `db:"doencas_cronicas" json:"doencas_cronicas"`
	MedicamentosContinuos StringList  `db:"medicamentos_continuos" json:"medicamentos_continuos"`
	ContatosEmergencia    ContatoList `db:"contatos_emergencia" json:"contatos_emergencia"`
	CreatedAt             time.Time   `db:"created_at" json:"created_at"`
	Ativo                 bool        `db:"ativo" json:"ativo"`
}

// InformacoesPrivadas is the sensitive one-to-one sub-record of a paciente.
// It cannot outlive its paciente; deletion cascades from the owning row.
type InformacoesPrivadas struct {
	ID                  int64      `db:"id" json:"-"`
	PacienteID          int64      `db:"paciente_id" json:"-"`
	TipoSanguineo       string     `db:"tipo_sanguineo" json:"tipo_sanguineo"`
	Cirurgias           StringList `db:"cirurgias" json:"cirurgias"`
	InternacoesPassadas StringList `db:"internacoes_passadas" json:"internacoes_passadas"`
	AlteracoesExames    StringList `db:"alteracoes_exames" json:"alteracoes_exames"`
	HistoricoExames     StringList `db:"historico_exames" json:"historico_exames"`
}

// PacienteCompleto is the authenticated response shape, paciente plus its
// sensitive sub-record when one exists.
type PacienteCompleto struct {
	Paciente
	InformacoesPrivadas *InformacoesPrivadas `json:"informacoes_privadas,omitempty"`
}

type CreateInformacoesPrivadasRequest struct {
	TipoSanguineo       string   `json:"tipo_sanguineo" binding:"omitempty,max=5,bloodtype"`
	Cirurgias           []string `json:"cirurgias"`
	InternacoesPassadas []string `json:"internacoes_passadas"`
	AlteracoesExames    []string `json:"alteracoes_exames"`
	HistoricoExames     []string `json:"historico_exames"`
}

type CreatePacienteRequest struct {
	Nome                  string                            `json:"nome" binding:"required,min=2,max=100"`
	Alergias              []string                          `json:"alergias"`
	DoencasCronicas       []string                          `json:"doencas_cronicas"`
	MedicamentosContinuos []string                          `json:"medicamentos_continuos"`
	ContatosEmergencia    []ContatoEmergencia               `json:"contatos_emergencia" binding:"omitempty,dive"`
	InformacoesPrivadas   *CreateInformacoesPrivadasRequest `json:"informacoes_privadas"`
}

// UpdateInformacoesPrivadasRequest patches the sub-record field-wise; nil
// fields are left untouched.
type UpdateInformacoesPrivadasRequest struct {
	TipoSanguineo       *string   `json:"tipo_sanguineo" binding:"omitempty,max=5,bloodtype"`
	Cirurgias           *[]string `json:"cirurgias"`
	InternacoesPassadas *[]string `json:"internacoes_passadas"`
	AlteracoesExames    *[]string `json:"alteracoes_exames"`
	HistoricoExames     *[]string `json:"historico_exames"`
}

// UpdatePacienteRequest carries the partial update. A present
// informacoes_privadas payload creates the sub-record when missing,
// otherwise patches it.
type UpdatePacienteRequest struct {
	Nome                  *string                           `json:"nome" binding:"omitempty,min=2,max=100"`
	Alergias              *[]string                         `json:"alergias"`
	DoencasCronicas       *[]string                         `json:"doencas_cronicas"`
	MedicamentosContinuos *[]string                         `json:"medicamentos_continuos"`
	ContatosEmergencia    *[]ContatoEmergencia              `json:"contatos_emergencia" binding:"omitempty,dive"`
	InformacoesPrivadas   *UpdateInformacoesPrivadasRequest `json:"informacoes_privadas"`
}

// PacienteFilters narrows the public search. Zero values mean no filter.
type PacienteFilters struct {
	ID   int64  `form:"id"`
	Nome string `form:"nome"`
}
