package medico

import (
	"context"

	"github.com/vitalkey/vitalkey-api/internal/model"
	"github.com/vitalkey/vitalkey-api/internal/repository"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
	"github.com/vitalkey/vitalkey-api/pkg/security"
)

type Service struct {
	medicoRepo repository.MedicoRepository
	hasher     security.PasswordHasher
}

func NewService(medicoRepo repository.MedicoRepository, hasher security.PasswordHasher) *Service {
	return &Service{medicoRepo: medicoRepo, hasher: hasher}
}

// Create registers a new medico with ativo defaulting to true. The
// pre-check names whichever field is already taken; the unique constraints
// close the remaining race at the storage layer.
func (s *Service) Create(ctx context.Context, req *model.CreateMedicoRequest) (*model.Medico, error) {
	existing, err := s.medicoRepo.FindDuplicate(ctx, req.CRM, req.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		if existing.CRM == req.CRM {
			return nil, apperrors.Conflict("CRM já cadastrado", nil)
		}
		return nil, apperrors.Conflict("E-mail já cadastrado", nil)
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		return nil, apperrors.BadRequest("senha inválida", err)
	}

	medico := &model.Medico{
		Nome:          req.Nome,
		Especialidade: req.Especialidade,
		CRM:           req.CRM,
		Email:         req.Email,
		SenhaHash:     hash,
		Ativo:         true,
	}

	if err := s.medicoRepo.Create(ctx, medico); err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}
	return medico, nil
}

// UpdateSelf applies the fields present in the request onto the
// authenticated medico and persists the result. Absent fields are left
// untouched.
func (s *Service) UpdateSelf(ctx context.Context, medico *model.Medico, req *model.UpdateMedicoRequest) (*model.Medico, error) {
	if req.Nome != nil {
		medico.Nome = *req.Nome
	}
	if req.Especialidade != nil {
		medico.Especialidade = *req.Especialidade
	}
	if req.Email != nil {
		medico.Email = *req.Email
	}
	if req.Senha != nil {
		hash, err := s.hasher.Hash(*req.Senha)
		if err != nil {
			return nil, apperrors.BadRequest("senha inválida", err)
		}
		medico.SenhaHash = hash
	}

	if err := s.medicoRepo.Update(ctx, medico); err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}
	return medico, nil
}

// SetStatus toggles the ativo flag of a medico by id.
func (s *Service) SetStatus(ctx context.Context, id int64, ativo bool) (*model.Medico, error) {
	if err := s.medicoRepo.UpdateStatus(ctx, id, ativo); err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}
	return s.medicoRepo.Get(ctx, id)
}

// Delete removes a medico permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.medicoRepo.Delete(ctx, id)
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return err
		}
		return apperrors.Internal(err)
	}
	return nil
}
