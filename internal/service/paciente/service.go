package paciente

import (
	"context"

	"github.com/vitalkey/vitalkey-api/internal/model"
	"github.com/vitalkey/vitalkey-api/internal/repository"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

type Service struct {
	pacienteRepo repository.PacienteRepository
}

func NewService(pacienteRepo repository.PacienteRepository) *Service {
	return &Service{pacienteRepo: pacienteRepo}
}

// Search lists active pacientes, optionally narrowed by id and nome.
func (s *Service) Search(ctx context.Context, filters *model.PacienteFilters) ([]*model.Paciente, error) {
	pacientes, err := s.pacienteRepo.Search(ctx, filters)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return pacientes, nil
}

// Get returns the non-sensitive view of a paciente.
func (s *Service) Get(ctx context.Context, id int64) (*model.Paciente, error) {
	paciente, err := s.pacienteRepo.Get(ctx, id)
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}
	return paciente, nil
}

// GetCompleto returns the paciente together with its sensitive sub-record.
func (s *Service) GetCompleto(ctx context.Context, id int64) (*model.PacienteCompleto, error) {
	paciente, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	info, err := s.pacienteRepo.GetInformacoesPrivadas(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.PacienteCompleto{Paciente: *paciente, InformacoesPrivadas: info}, nil
}

// Create persists a paciente and, when supplied, its informacoes_privadas
// atomically.
func (s *Service) Create(ctx context.Context, req *model.CreatePacienteRequest) (*model.PacienteCompleto, error) {
	paciente := &model.Paciente{
		Nome:                  req.Nome,
		Alergias:              toStringList(req.Alergias),
		DoencasCronicas:       toStringList(req.DoencasCronicas),
		MedicamentosContinuos: toStringList(req.MedicamentosContinuos),
		ContatosEmergencia:    toContatoList(req.ContatosEmergencia),
		Ativo:                 true,
	}

	var info *model.InformacoesPrivadas
	if req.InformacoesPrivadas != nil {
		info = &model.InformacoesPrivadas{
			TipoSanguineo:       req.InformacoesPrivadas.TipoSanguineo,
			Cirurgias:           toStringList(req.InformacoesPrivadas.Cirurgias),
			InternacoesPassadas: toStringList(req.InformacoesPrivadas.InternacoesPassadas),
			AlteracoesExames:    toStringList(req.InformacoesPrivadas.AlteracoesExames),
			HistoricoExames:     toStringList(req.InformacoesPrivadas.HistoricoExames),
		}
	}

	if err := s.pacienteRepo.Create(ctx, paciente, info); err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.PacienteCompleto{Paciente: *paciente, InformacoesPrivadas: info}, nil
}

// Update applies the fields present in the request. A present
// informacoes_privadas payload creates the sub-record when none exists,
// otherwise patches only its present fields. Both writes share one
// transaction.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdatePacienteRequest) (*model.PacienteCompleto, error) {
	paciente, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		paciente.Nome = *req.Nome
	}
	if req.Alergias != nil {
		paciente.Alergias = toStringList(*req.Alergias)
	}
	if req.DoencasCronicas != nil {
		paciente.DoencasCronicas = toStringList(*req.DoencasCronicas)
	}
	if req.MedicamentosContinuos != nil {
		paciente.MedicamentosContinuos = toStringList(*req.MedicamentosContinuos)
	}
	if req.ContatosEmergencia != nil {
		paciente.ContatosEmergencia = toContatoList(*req.ContatosEmergencia)
	}

	var info *model.InformacoesPrivadas
	if req.InformacoesPrivadas != nil {
		info, err = s.pacienteRepo.GetInformacoesPrivadas(ctx, id)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		if info == nil {
			info = &model.InformacoesPrivadas{
				PacienteID:          id,
				Cirurgias:           model.StringList{},
				InternacoesPassadas: model.StringList{},
				AlteracoesExames:    model.StringList{},
				HistoricoExames:     model.StringList{},
			}
		}
		applyInfoUpdate(info, req.InformacoesPrivadas)
	}

	if err := s.pacienteRepo.Update(ctx, paciente, info); err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}

	if info == nil {
		info, err = s.pacienteRepo.GetInformacoesPrivadas(ctx, id)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	return &model.PacienteCompleto{Paciente: *paciente, InformacoesPrivadas: info}, nil
}

// Delete removes a paciente; its informacoes_privadas goes with it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.pacienteRepo.Delete(ctx, id)
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return err
		}
		return apperrors.Internal(err)
	}
	return nil
}

func applyInfoUpdate(info *model.InformacoesPrivadas, req *model.UpdateInformacoesPrivadasRequest) {
	if req.TipoSanguineo != nil {
		info.TipoSanguineo = *req.TipoSanguineo
	}
	if req.Cirurgias != nil {
		info.Cirurgias = toStringList(*req.Cirurgias)
	}
	if req.InternacoesPassadas != nil {
		info.InternacoesPassadas = toStringList(*req.InternacoesPassadas)
	}
	if req.AlteracoesExames != nil {
		info.AlteracoesExames = toStringList(*req.AlteracoesExames)
	}
	if req.HistoricoExames != nil {
		info.HistoricoExames = toStringList(*req.HistoricoExames)
	}
}

func toStringList(items []string) model.StringList {
	if items == nil {
		return model.StringList{}
	}
	return model.StringList(items)
}

func toContatoList(items []model.ContatoEmergencia) model.ContatoList {
	if items == nil {
		return model.ContatoList{}
	}
	return model.ContatoList(items)
}
