package repository

import (
	"context"

	"github.com/vitalkey/vitalkey-api/internal/model"
)

type MedicoRepository interface {
	Create(ctx context.Context, medico *model.Medico) error
	Get(ctx context.Context, id int64) (*model.Medico, error)
	GetByCRMOrEmail(ctx context.Context, login string) (*model.Medico, error)
	FindDuplicate(ctx context.Context, crm, email string) (*model.Medico, error)
	Update(ctx context.Context, medico *model.Medico) error
	UpdateStatus(ctx context.Context, id int64, ativo bool) error
	Delete(ctx context.Context, id int64) error
}

type PacienteRepository interface {
	Create(ctx context.Context, paciente *model.Paciente, info *model.InformacoesPrivadas) error
	Get(ctx context.Context, id int64) (*model.Paciente, error)
	GetInformacoesPrivadas(ctx context.Context, pacienteID int64) (*model.InformacoesPrivadas, error)
	Search(ctx context.Context, filters *model.PacienteFilters) ([]*model.Paciente, error)
	Update(ctx context.Context, paciente *model.Paciente, info *model.InformacoesPrivadas) error
	Delete(ctx context.Context, id int64) error
}
