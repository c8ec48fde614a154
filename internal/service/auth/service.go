package auth

import (
	"context"

	"github.com/vitalkey/vitalkey-api/internal/model"
	"github.com/vitalkey/vitalkey-api/internal/repository"
	"github.com/vitalkey/vitalkey-api/pkg/auth"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
	"github.com/vitalkey/vitalkey-api/pkg/security"
)

// Service authenticates medicos: credential login and bearer-token
// resolution for the protected endpoints.
type Service struct {
	medicoRepo repository.MedicoRepository
	jwtSvc     auth.JWTService
	hasher     security.PasswordHasher
}

func NewService(medicoRepo repository.MedicoRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		medicoRepo: medicoRepo,
		jwtSvc:     jwtSvc,
		hasher:     hasher,
	}
}

// Login matches the username against crm or email and issues a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	medico, err := s.medicoRepo.GetByCRMOrEmail(ctx, username)
	if err != nil {
		return nil, apperrors.Unauthorized("Credenciais inválidas", err)
	}

	if err := s.hasher.Compare(medico.SenhaHash, password); err != nil {
		return nil, apperrors.Unauthorized("Credenciais inválidas", err)
	}

	if !medico.Ativo {
		return nil, apperrors.Forbidden("Médico inativo", nil)
	}

	token, err := s.jwtSvc.Generate(medico.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Authenticate resolves a bearer token to an active medico. Invalid,
// expired or unresolvable tokens are unauthorized; a valid token for a
// deactivated account is forbidden.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.Medico, error) {
	claims, err := s.jwtSvc.Verify(token)
	if err != nil {
		return nil, apperrors.Unauthorized("Token inválido ou expirado", err)
	}

	medico, err := s.medicoRepo.Get(ctx, claims.MedicoID)
	if err != nil {
		return nil, apperrors.Unauthorized("Usuário não encontrado", err)
	}

	if !medico.Ativo {
		return nil, apperrors.Forbidden("Conta inativa", nil)
	}

	return medico, nil
}
