package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Admiral-Simo/globalvaccinator/internal/database"
	"github.com/Admiral-Simo/globalvaccinator/internal/models"
)

func setupMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := database.FromConn(conn, "silent")
	require.NoError(t, err)
	return NewGormStore(db), mock
}

var patientColumns = []string{"id_label", "name", "dob", "sex", "address", "parent_name", "phone", "allergies", "email"}

func TestGormStore_ListPatients(t *testing.T) {
	s, mock := setupMockStore(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT \* FROM "patients"`).
		WillReturnRows(sqlmock.NewRows(patientColumns).
			AddRow("P001", "Jane Doe", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), "F", nil, "John Doe", nil, nil, nil))
	mock.ExpectQuery(`SELECT \* FROM "records"`).
		WithArgs("P001").
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "milestone", "vax_name", "due_date", "status", "date_given", "observations"}).
			AddRow(7, "P001", "2-month shot", "DTaP", time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), "due", nil, nil))
	mock.ExpectQuery(`SELECT \* FROM "visits"`).
		WithArgs("P001").
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "visit_date", "weight", "height", "imc"}).
			AddRow(3, "P001", time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), 4.2, 55.0, 13.9))

	patients, err := s.ListPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)

	jane := patients[0]
	assert.Equal(t, "P001", jane.IDLabel)
	assert.Equal(t, "2020-01-01", jane.Dob.String())
	assert.Equal(t, "F", *jane.Sex)
	assert.Nil(t, jane.Address)
	require.Len(t, jane.Records, 1)
	assert.Equal(t, uint(7), jane.Records[0].ID)
	assert.Equal(t, "DTaP", *jane.Records[0].VaxName)
	assert.False(t, jane.Records[0].DateGiven.Valid)
	assert.Equal(t, "2020-03-01", jane.Records[0].DueDate.String())
	require.Len(t, jane.Visits, 1)
	assert.InDelta(t, 13.9, *jane.Visits[0].Imc, 1e-9)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ListPatients_StorageDown(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "patients"`).
		WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

	_, err := s.ListPatients(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_FindPatient_NotFound(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE id_label = \$1`).
		WillReturnRows(sqlmock.NewRows(patientColumns))

	_, err := s.FindPatient(context.Background(), "P404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreatePatient_CascadesChildren(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "patients"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))
	mock.ExpectQuery(`INSERT INTO "visits"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	jane := newJane()
	jane.Records[0].ID = 99
	jane.Records[0].PatientID = "someone-else"

	require.NoError(t, s.CreatePatient(context.Background(), jane))

	assert.Equal(t, uint(11), jane.Records[0].ID)
	assert.Equal(t, uint(12), jane.Records[1].ID)
	assert.Equal(t, "P001", jane.Records[0].PatientID)
	assert.Equal(t, uint(21), jane.Visits[0].ID)
	assert.Equal(t, "P001", jane.Visits[0].PatientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreatePatient_ChildlessSkipsChildInserts(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "patients"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.CreatePatient(context.Background(), &models.Patient{IDLabel: "P002", Name: "No Kids"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreatePatient_DuplicateRollsBack(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "patients"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: `duplicate key value violates unique constraint "patients_pkey"`})
	mock.ExpectRollback()

	jane := newJane()
	err := s.CreatePatient(context.Background(), jane)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Zero(t, jane.Records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreatePatient_ChildFailureRollsBackOwner(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "patients"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "records"`).
		WillReturnError(&pgconn.PgError{Code: pgNotNullViolation, Message: `null value in column "patient_id"`})
	mock.ExpectRollback()

	err := s.CreatePatient(context.Background(), newJane())
	assert.ErrorIs(t, err, ErrInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeletePatient_CascadesInOneTransaction(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "records"`).WithArgs("P001").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "visits"`).WithArgs("P001").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "patients"`).WithArgs("P001").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeletePatient(context.Background(), "P001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeletePatient_Missing(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "records"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "visits"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "patients"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.DeletePatient(context.Background(), "P404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Ping(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectPing() // issued by gorm.Open
	db, err := database.FromConn(conn, "silent")
	require.NoError(t, err)
	s := NewGormStore(db)

	mock.ExpectPing()
	assert.NoError(t, s.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection reset by peer"))
	assert.ErrorIs(t, s.Ping(context.Background()), ErrUnavailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, ErrConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, ErrInvalid},
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation}, ErrConflict},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation}), ErrConflict},
		{"not null", &pgconn.PgError{Code: pgNotNullViolation}, ErrInvalid},
		{"bad date", &pgconn.PgError{Code: pgInvalidDatetime}, ErrInvalid},
		{"too many connections", &pgconn.PgError{Code: "53300"}, ErrUnavailable},
		{"network", errors.New("i/o timeout"), ErrUnavailable},
		{"deadline", context.DeadlineExceeded, ErrUnavailable},
		{"already translated", fmt.Errorf("patient %q: %w", "P1", ErrNotFound), ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translate(tc.in), tc.want)
		})
	}
	assert.NoError(t, translate(nil))
}
