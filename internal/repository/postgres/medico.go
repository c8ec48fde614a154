package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vitalkey/vitalkey-api/internal/model"
	"github.com/vitalkey/vitalkey-api/internal/repository"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

type medicoRepository struct {
	BaseRepository
}

func NewMedicoRepository(db *sqlx.DB) repository.MedicoRepository {
	return &medicoRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *medicoRepository) Create(ctx context.Context, medico *model.Medico) error {
	query := `
		INSERT INTO medicos (nome, especialidade, crm, email, senha_hash, ativo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.GetDB().QueryRowxContext(ctx, query,
		medico.Nome,
		medico.Especialidade,
		medico.CRM,
		medico.Email,
		medico.SenhaHash,
		medico.Ativo,
	).Scan(&medico.ID)
	if err != nil {
		if cerr := translateUnique(err, "CRM ou e-mail já cadastrado"); cerr != err {
			return cerr
		}
		return fmt.Errorf("failed to create medico: %w", err)
	}
	return nil
}

func (r *medicoRepository) Get(ctx context.Context, id int64) (*model.Medico, error) {
	query := `SELECT * FROM medicos WHERE id = $1`
	var medico model.Medico
	err := r.GetDB().GetContext(ctx, &medico, query, id)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Médico não encontrado", err)
		}
		return nil, fmt.Errorf("failed to get medico: %w", err)
	}
	return &medico, nil
}

func (r *medicoRepository) GetByCRMOrEmail(ctx context.Context, login string) (*model.Medico, error) {
	query := `SELECT * FROM medicos WHERE crm = $1 OR email = $1`
	var medico model.Medico
	err := r.GetDB().GetContext(ctx, &medico, query, login)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Médico não encontrado", err)
		}
		return nil, fmt.Errorf("failed to get medico by login: %w", err)
	}
	return &medico, nil
}

// FindDuplicate returns an existing medico sharing the crm or email, or nil
// when neither is taken.
func (r *medicoRepository) FindDuplicate(ctx context.Context, crm, email string) (*model.Medico, error) {
	query := `SELECT * FROM medicos WHERE crm = $1 OR email = $2`
	var medico model.Medico
	err := r.GetDB().GetContext(ctx, &medico, query, crm, email)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check for duplicate medico: %w", err)
	}
	return &medico, nil
}

func (r *medicoRepository) Update(ctx context.Context, medico *model.Medico) error {
	query := `
		UPDATE medicos
		SET nome = $1, especialidade = $2, email = $3, senha_hash = $4
		WHERE id = $5
	`
	_, err := r.GetDB().ExecContext(ctx, query,
		medico.Nome,
		medico.Especialidade,
		medico.Email,
		medico.SenhaHash,
		medico.ID,
	)
	if err != nil {
		if cerr := translateUnique(err, "E-mail já cadastrado"); cerr != err {
			return cerr
		}
		return fmt.Errorf("failed to update medico: %w", err)
	}
	return nil
}

func (r *medicoRepository) UpdateStatus(ctx context.Context, id int64, ativo bool) error {
	query := `UPDATE medicos SET ativo = $1 WHERE id = $2`
	res, err := r.GetDB().ExecContext(ctx, query, ativo, id)
	if err != nil {
		return fmt.Errorf("failed to update medico status: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.NotFound("Médico não encontrado", nil)
	}
	return nil
}

func (r *medicoRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM medicos WHERE id = $1`
	res, err := r.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete medico: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.NotFound("Médico não encontrado", nil)
	}
	return nil
}
