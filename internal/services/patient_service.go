package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Admiral-Simo/globalvaccinator/internal/metrics"
	"github.com/Admiral-Simo/globalvaccinator/internal/models"
	"github.com/Admiral-Simo/globalvaccinator/internal/store"
)

var (
	// ErrConstraintViolation is returned when the idLabel is already taken.
	ErrConstraintViolation = errors.New("patient with this idLabel already exists")
	// ErrStorageUnavailable is returned when the store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports a request the store must never see.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Fields, ", ")
}

// InterfacePatientService defines the patient service interface
type InterfacePatientService interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Ping(ctx context.Context) error
}

// PatientService validates patients and hands them to the store.
type PatientService struct {
	Store   store.PatientStore
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// NewPatientService creates a new patient service
func NewPatientService(patientStore store.PatientStore, m *metrics.Metrics, logger *zap.Logger) InterfacePatientService {
	return &PatientService{
		Store:   patientStore,
		Metrics: m,
		Logger:  logger,
	}
}

// ListPatients returns every patient with its records and visits.
func (s *PatientService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.Store.ListPatients(ctx)
	if err != nil {
		s.Logger.Error("failed to list patients", zap.Error(err))
		return nil, mapStoreError(err)
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	for i := range patients {
		normalizeChildren(&patients[i])
	}
	return patients, nil
}

// CreatePatient stores patient together with its records and visits and
// returns it as stored.
func (s *PatientService) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	if err := validatePatient(patient); err != nil {
		s.Metrics.IncrementCreateRejected(metrics.ReasonValidation)
		return nil, err
	}

	for i := range patient.Records {
		patient.Records[i].ID = 0
		patient.Records[i].PatientID = patient.IDLabel
	}
	for i := range patient.Visits {
		patient.Visits[i].ID = 0
		patient.Visits[i].PatientID = patient.IDLabel
	}

	if err := s.Store.CreatePatient(ctx, patient); err != nil {
		mapped := mapStoreError(err)
		s.Metrics.IncrementCreateRejected(rejectReason(mapped))
		if errors.Is(mapped, ErrStorageUnavailable) {
			s.Logger.Error("failed to create patient", zap.String("id_label", patient.IDLabel), zap.Error(err))
		} else {
			s.Logger.Info("patient rejected", zap.String("id_label", patient.IDLabel), zap.Error(err))
		}
		return nil, mapped
	}

	normalizeChildren(patient)
	s.Metrics.IncrementPatientsCreated()
	s.Logger.Info("patient created",
		zap.String("id_label", patient.IDLabel),
		zap.Int("records", len(patient.Records)),
		zap.Int("visits", len(patient.Visits)),
	)
	return patient, nil
}

// Ping reports whether the store is reachable.
func (s *PatientService) Ping(ctx context.Context) error {
	if err := s.Store.Ping(ctx); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func validatePatient(patient *models.Patient) error {
	if patient == nil {
		return &ValidationError{Reason: "patient is required"}
	}
	patient.IDLabel = strings.TrimSpace(patient.IDLabel)

	var missing []string
	if patient.IDLabel == "" {
		missing = append(missing, "idLabel")
	}
	if strings.TrimSpace(patient.Name) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Reason: "missing required fields"}
	}
	return nil
}

func normalizeChildren(patient *models.Patient) {
	if patient.Records == nil {
		patient.Records = []models.Record{}
	}
	if patient.Visits == nil {
		patient.Visits = []models.Visit{}
	}
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrConflict):
		return ErrConstraintViolation
	case errors.Is(err, store.ErrInvalid):
		return &ValidationError{Reason: err.Error()}
	default:
		return ErrStorageUnavailable
	}
}

func rejectReason(err error) string {
	var validationErr *ValidationError
	switch {
	case errors.Is(err, ErrConstraintViolation):
		return metrics.ReasonDuplicate
	case errors.As(err, &validationErr):
		return metrics.ReasonValidation
	default:
		return metrics.ReasonUnavailable
	}
}
