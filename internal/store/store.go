// Package store persists patients together with the records and visits they
// own. Cascades are explicit: CreatePatient writes the children in the same
// transaction as their owner and DeletePatient removes them before it.
package store

import (
	"context"
	"errors"

	"github.com/Admiral-Simo/globalvaccinator/internal/models"
)

// Sentinel errors for storage facts. Implementations return them wrapped so
// callers can test with errors.Is and still read the cause.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrInvalid     = errors.New("invalid")
	ErrUnavailable = errors.New("unavailable")
)

// PatientStore is the persistence contract the patient service is handed.
type PatientStore interface {
	// ListPatients returns every patient with its records and visits loaded.
	ListPatients(ctx context.Context) ([]models.Patient, error)
	// FindPatient returns one patient with its records and visits loaded.
	FindPatient(ctx context.Context, idLabel string) (*models.Patient, error)
	// CreatePatient inserts the patient and its children atomically. Child
	// ids are assigned by the store and written back into patient; an
	// existing idLabel yields ErrConflict and nothing is written.
	CreatePatient(ctx context.Context, patient *models.Patient) error
	// DeletePatient removes the patient and every record and visit it owns.
	DeletePatient(ctx context.Context, idLabel string) error
	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}
