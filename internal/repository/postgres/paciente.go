package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vitalkey/vitalkey-api/internal/model"
	"github.com/vitalkey/vitalkey-api/internal/repository"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

type pacienteRepository struct {
	BaseRepository
}

func NewPacienteRepository(db *sqlx.DB) repository.PacienteRepository {
	return &pacienteRepository{BaseRepository: NewBaseRepository(db)}
}

// Create persists the paciente and, when supplied, its informacoes_privadas
// in the same transaction.
func (r *pacienteRepository) Create(ctx context.Context, paciente *model.Paciente, info *model.InformacoesPrivadas) error {
	paciente.CreatedAt = time.Now().UTC()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO pacientes (nome, alergias, doencas_cronicas, medicamentos_continuos, contatos_emergencia, created_at, ativo)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err := tx.QueryRowxContext(ctx, query,
			paciente.Nome,
			paciente.Alergias,
			paciente.DoencasCronicas,
			paciente.MedicamentosContinuos,
			paciente.ContatosEmergencia,
			paciente.CreatedAt,
			paciente.Ativo,
		).Scan(&paciente.ID)
		if err != nil {
			return fmt.Errorf("failed to create paciente: %w", err)
		}

		if info == nil {
			return nil
		}
		info.PacienteID = paciente.ID
		return insertInformacoesPrivadas(ctx, tx, info)
	})
}

func insertInformacoesPrivadas(ctx context.Context, tx *sqlx.Tx, info *model.InformacoesPrivadas) error {
	query := `
		INSERT INTO informacoes_privadas (paciente_id, tipo_sanguineo, cirurgias, internacoes_passadas, alteracoes_exames, historico_exames)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := tx.QueryRowxContext(ctx, query,
		info.PacienteID,
		info.TipoSanguineo,
		info.Cirurgias,
		info.InternacoesPassadas,
		info.AlteracoesExames,
		info.HistoricoExames,
	).Scan(&info.ID)
	if err != nil {
		return fmt.Errorf("failed to create informacoes privadas: %w", err)
	}
	return nil
}

func (r *pacienteRepository) Get(ctx context.Context, id int64) (*model.Paciente, error) {
	query := `SELECT * FROM pacientes WHERE id = $1`
	var paciente model.Paciente
	err := r.GetDB().GetContext(ctx, &paciente, query, id)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Paciente não encontrado", err)
		}
		return nil, fmt.Errorf("failed to get paciente: %w", err)
	}
	return &paciente, nil
}

// GetInformacoesPrivadas returns nil without error when the paciente has no
// sub-record yet.
func (r *pacienteRepository) GetInformacoesPrivadas(ctx context.Context, pacienteID int64) (*model.InformacoesPrivadas, error) {
	query := `SELECT * FROM informacoes_privadas WHERE paciente_id = $1`
	var info model.InformacoesPrivadas
	err := r.GetDB().GetContext(ctx, &info, query, pacienteID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get informacoes privadas: %w", err)
	}
	return &info, nil
}

// Search returns active pacientes, optionally narrowed by exact id and
// case-insensitive substring match on nome.
func (r *pacienteRepository) Search(ctx context.Context, filters *model.PacienteFilters) ([]*model.Paciente, error) {
	query := `SELECT * FROM pacientes WHERE ativo = true`
	args := []interface{}{}

	if filters != nil {
		if filters.ID != 0 {
			args = append(args, filters.ID)
			query += fmt.Sprintf(" AND id = $%d", len(args))
		}
		if filters.Nome != "" {
			args = append(args, "%"+strings.ToLower(filters.Nome)+"%")
			query += fmt.Sprintf(" AND LOWER(nome) LIKE $%d", len(args))
		}
	}
	query += " ORDER BY id"

	pacientes := []*model.Paciente{}
	if err := r.GetDB().SelectContext(ctx, &pacientes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search pacientes: %w", err)
	}
	return pacientes, nil
}

// Update persists the merged paciente and, when info is non-nil, inserts or
// updates the sub-record in the same transaction.
func (r *pacienteRepository) Update(ctx context.Context, paciente *model.Paciente, info *model.InformacoesPrivadas) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE pacientes
			SET nome = $1, alergias = $2, doencas_cronicas = $3, medicamentos_continuos = $4, contatos_emergencia = $5
			WHERE id = $6
		`
		res, err := tx.ExecContext(ctx, query,
			paciente.Nome,
			paciente.Alergias,
			paciente.DoencasCronicas,
			paciente.MedicamentosContinuos,
			paciente.ContatosEmergencia,
			paciente.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update paciente: %w", err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return apperrors.NotFound("Paciente não encontrado", nil)
		}

		if info == nil {
			return nil
		}
		if info.ID == 0 {
			info.PacienteID = paciente.ID
			return insertInformacoesPrivadas(ctx, tx, info)
		}

		infoQuery := `
			UPDATE informacoes_privadas
			SET tipo_sanguineo = $1, cirurgias = $2, internacoes_passadas = $3, alteracoes_exames = $4, historico_exames = $5
			WHERE id = $6
		`
		_, err = tx.ExecContext(ctx, infoQuery,
			info.TipoSanguineo,
			info.Cirurgias,
			info.InternacoesPassadas,
			info.AlteracoesExames,
			info.HistoricoExames,
			info.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update informacoes privadas: %w", err)
		}
		return nil
	})
}

// Delete removes the paciente; the FK ON DELETE CASCADE removes any
// informacoes_privadas row with it.
func (r *pacienteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM pacientes WHERE id = $1`
	res, err := r.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete paciente: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.NotFound("Paciente não encontrado", nil)
	}
	return nil
}
