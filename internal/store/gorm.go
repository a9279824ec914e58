package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Admiral-Simo/globalvaccinator/internal/models"
)

// Postgres SQLSTATE codes the store distinguishes.
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
	pgInvalidDatetime     = "22007"
	pgDatetimeOverflow    = "22008"
)

// GormStore is the PatientStore backed by postgres through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (s *GormStore) withChildren(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Records", orderByID).
		Preload("Visits", orderByID)
}

func (s *GormStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.withChildren(ctx).Order("id_label").Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (s *GormStore) FindPatient(ctx context.Context, idLabel string) (*models.Patient, error) {
	var patient models.Patient
	if err := s.withChildren(ctx).Where("id_label = ?", idLabel).First(&patient).Error; err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

func (s *GormStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The owner goes first so the children's foreign keys resolve.
		if err := tx.Omit(clause.Associations).Create(patient).Error; err != nil {
			return err
		}
		if len(patient.Records) > 0 {
			for i := range patient.Records {
				patient.Records[i].ID = 0
				patient.Records[i].PatientID = patient.IDLabel
			}
			if err := tx.Create(&patient.Records).Error; err != nil {
				return err
			}
		}
		if len(patient.Visits) > 0 {
			for i := range patient.Visits {
				patient.Visits[i].ID = 0
				patient.Visits[i].PatientID = patient.IDLabel
			}
			if err := tx.Create(&patient.Visits).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		resetChildIDs(patient)
		return translate(err)
	}
	return nil
}

func (s *GormStore) DeletePatient(ctx context.Context, idLabel string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", idLabel).Delete(&models.Record{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", idLabel).Delete(&models.Visit{}).Error; err != nil {
			return err
		}
		result := tx.Where("id_label = ?", idLabel).Delete(&models.Patient{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("patient %q: %w", idLabel, ErrNotFound)
		}
		return nil
	})
	return translate(err)
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// translate maps driver and gorm errors onto the store sentinels. Anything
// that is not a recognised data error is reported as ErrUnavailable.
func translate(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{ErrNotFound, ErrConflict, ErrInvalid, ErrUnavailable} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %v", ErrConflict, err)
		case pgNotNullViolation, pgForeignKeyViolation, pgCheckViolation,
			pgStringTooLong, pgInvalidDatetime, pgDatetimeOverflow:
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func resetChildIDs(patient *models.Patient) {
	for i := range patient.Records {
		patient.Records[i].ID = 0
	}
	for i := range patient.Visits {
		patient.Visits[i].ID = 0
	}
}
