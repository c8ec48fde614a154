package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalkey/vitalkey-api/internal/model"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

func pacienteColumns() []string {
	return []string{"id", "nome", "alergias", "doencas_cronicas", "medicamentos_continuos", "contatos_emergencia", "created_at", "ativo"}
}

func infoColumns() []string {
	return []string{"id", "paciente_id", "tipo_sanguineo", "cirurgias", "internacoes_passadas", "alteracoes_exames", "historico_exames"}
}

func TestPacienteCreateWithInformacoesPrivadas(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pacientes")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO informacoes_privadas")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectCommit()

	paciente := &model.Paciente{Nome: "Maria", Alergias: model.StringList{}, Ativo: true}
	info := &model.InformacoesPrivadas{TipoSanguineo: "O-"}

	require.NoError(t, repo.Create(context.Background(), paciente, info))
	assert.Equal(t, int64(3), paciente.ID)
	assert.Equal(t, int64(3), info.PacienteID)
	assert.Equal(t, int64(9), info.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteCreateRollsBackOnInfoFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pacientes")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO informacoes_privadas")).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.Paciente{Nome: "Maria"}, &model.InformacoesPrivadas{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteSearchNoFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	rows := sqlmock.NewRows(pacienteColumns()).
		AddRow(int64(1), "Ana", []byte(`["dipirona"]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), time.Now(), true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM pacientes WHERE ativo = true ORDER BY id")).
		WillReturnRows(rows)

	pacientes, err := repo.Search(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, pacientes, 1)
	assert.Equal(t, model.StringList{"dipirona"}, pacientes[0].Alergias)
}

func TestPacienteSearchWithFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	query := "SELECT * FROM pacientes WHERE ativo = true AND id = $1 AND LOWER(nome) LIKE $2 ORDER BY id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1), "%ana%").
		WillReturnRows(sqlmock.NewRows(pacienteColumns()))

	pacientes, err := repo.Search(context.Background(), &model.PacienteFilters{ID: 1, Nome: "Ana"})
	require.NoError(t, err)
	assert.Empty(t, pacientes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteGetInformacoesPrivadasAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM informacoes_privadas WHERE paciente_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(infoColumns()))

	info, err := repo.GetInformacoesPrivadas(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestPacienteUpdateInsertsMissingInfo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pacientes")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO informacoes_privadas")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	paciente := &model.Paciente{ID: 2, Nome: "Maria"}
	info := &model.InformacoesPrivadas{TipoSanguineo: "A+"}

	require.NoError(t, repo.Update(context.Background(), paciente, info))
	assert.Equal(t, int64(5), info.ID)
	assert.Equal(t, int64(2), info.PacienteID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteUpdateExistingInfo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pacientes")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE informacoes_privadas")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	paciente := &model.Paciente{ID: 2, Nome: "Maria"}
	info := &model.InformacoesPrivadas{ID: 5, PacienteID: 2, TipoSanguineo: "A+"}

	require.NoError(t, repo.Update(context.Background(), paciente, info))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pacientes")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &model.Paciente{ID: 42}, nil)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestPacienteDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pacientes WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 42)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
