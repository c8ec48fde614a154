package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitalkey/vitalkey-api/internal/model"
	"github.com/vitalkey/vitalkey-api/pkg/auth"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
	"github.com/vitalkey/vitalkey-api/pkg/security"
)

type fakeMedicoRepo struct {
	medicos map[int64]*model.Medico
}

func newFakeMedicoRepo(medicos ...*model.Medico) *fakeMedicoRepo {
	repo := &fakeMedicoRepo{medicos: make(map[int64]*model.Medico)}
	for _, m := range medicos {
		repo.medicos[m.ID] = m
	}
	return repo
}

func (r *fakeMedicoRepo) Create(ctx context.Context, medico *model.Medico) error {
	r.medicos[medico.ID] = medico
	return nil
}

func (r *fakeMedicoRepo) Get(ctx context.Context, id int64) (*model.Medico, error) {
	if m, ok := r.medicos[id]; ok {
		return m, nil
	}
	return nil, apperrors.NotFound("Médico não encontrado", nil)
}

func (r *fakeMedicoRepo) GetByCRMOrEmail(ctx context.Context, login string) (*model.Medico, error) {
	for _, m := range r.medicos {
		if m.CRM == login || m.Email == login {
			return m, nil
		}
	}
	return nil, apperrors.NotFound("Médico não encontrado", nil)
}

func (r *fakeMedicoRepo) FindDuplicate(ctx context.Context, crm, email string) (*model.Medico, error) {
	for _, m := range r.medicos {
		if m.CRM == crm || m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMedicoRepo) Update(ctx context.Context, medico *model.Medico) error {
	r.medicos[medico.ID] = medico
	return nil
}

func (r *fakeMedicoRepo) UpdateStatus(ctx context.Context, id int64, ativo bool) error {
	m, ok := r.medicos[id]
	if !ok {
		return apperrors.NotFound("Médico não encontrado", nil)
	}
	m.Ativo = ativo
	return nil
}

func (r *fakeMedicoRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.medicos[id]; !ok {
		return apperrors.NotFound("Médico não encontrado", nil)
	}
	delete(r.medicos, id)
	return nil
}

func newTestService(t *testing.T, medicos ...*model.Medico) (*Service, auth.JWTService) {
	t.Helper()
	jwtSvc := auth.NewJWTService(auth.Config{Secret: "test-secret", ExpiryMinutes: 30})
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	return NewService(newFakeMedicoRepo(medicos...), jwtSvc, hasher), jwtSvc
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginByCRMAndEmail(t *testing.T) {
	medico := &model.Medico{
		ID:        1,
		CRM:       "12345",
		Email:     "a@b.com",
		SenhaHash: hashOf(t, "pass"),
		Ativo:     true,
	}
	svc, jwtSvc := newTestService(t, medico)

	for _, username := range []string{"12345", "a@b.com"} {
		tokens, err := svc.Login(context.Background(), username, "pass")
		require.NoError(t, err)
		assert.Equal(t, "bearer", tokens.TokenType)

		claims, err := jwtSvc.Verify(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.MedicoID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	medico := &model.Medico{ID: 1, CRM: "12345", SenhaHash: hashOf(t, "pass"), Ativo: true}
	svc, _ := newTestService(t, medico)

	_, err := svc.Login(context.Background(), "12345", "wrong")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthorized))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody", "pass")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthorized))
}

func TestLoginInactiveMedico(t *testing.T) {
	medico := &model.Medico{ID: 1, CRM: "12345", SenhaHash: hashOf(t, "pass"), Ativo: false}
	svc, _ := newTestService(t, medico)

	_, err := svc.Login(context.Background(), "12345", "pass")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrForbidden))
}

func TestAuthenticate(t *testing.T) {
	medico := &model.Medico{ID: 7, CRM: "777", Ativo: true}
	svc, jwtSvc := newTestService(t, medico)

	token, err := jwtSvc.Generate(7)
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestAuthenticateInactiveMedico(t *testing.T) {
	medico := &model.Medico{ID: 7, Ativo: false}
	svc, jwtSvc := newTestService(t, medico)

	token, err := jwtSvc.Generate(7)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrForbidden))
}

func TestAuthenticateUnknownMedico(t *testing.T) {
	svc, jwtSvc := newTestService(t)

	token, err := jwtSvc.Generate(99)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthorized))
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "garbage")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthorized))
}
