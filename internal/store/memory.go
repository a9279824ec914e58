package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Admiral-Simo/globalvaccinator/internal/models"
)

// MemoryStore keeps patients in process memory with the same guarantees as
// the database: unique idLabel, store-assigned child ids that are never
// reused, and cascading deletes. Values are copied in and out so callers
// never share state with the store.
type MemoryStore struct {
	mu           sync.RWMutex
	patients     map[string]models.Patient
	records      map[uint]models.Record
	visits       map[uint]models.Visit
	nextRecordID uint
	nextVisitID  uint
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		patients: make(map[string]models.Patient),
		records:  make(map[uint]models.Record),
		visits:   make(map[uint]models.Visit),
	}
}

func (s *MemoryStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]models.Patient, 0, len(s.patients))
	for idLabel := range s.patients {
		patients = append(patients, s.assemble(idLabel))
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].IDLabel < patients[j].IDLabel })
	return patients, nil
}

func (s *MemoryStore) FindPatient(ctx context.Context, idLabel string) (*models.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.patients[idLabel]; !ok {
		return nil, fmt.Errorf("patient %q: %w", idLabel, ErrNotFound)
	}
	patient := s.assemble(idLabel)
	return &patient, nil
}

func (s *MemoryStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.patients[patient.IDLabel]; exists {
		return fmt.Errorf("patient %q: %w", patient.IDLabel, ErrConflict)
	}

	s.patients[patient.IDLabel] = clonePatient(*patient)

	for i := range patient.Records {
		s.nextRecordID++
		patient.Records[i].ID = s.nextRecordID
		patient.Records[i].PatientID = patient.IDLabel
		s.records[s.nextRecordID] = cloneRecord(patient.Records[i])
	}
	for i := range patient.Visits {
		s.nextVisitID++
		patient.Visits[i].ID = s.nextVisitID
		patient.Visits[i].PatientID = patient.IDLabel
		s.visits[s.nextVisitID] = cloneVisit(patient.Visits[i])
	}
	return nil
}

func (s *MemoryStore) DeletePatient(ctx context.Context, idLabel string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[idLabel]; !ok {
		return fmt.Errorf("patient %q: %w", idLabel, ErrNotFound)
	}
	for id, r := range s.records {
		if r.PatientID == idLabel {
			delete(s.records, id)
		}
	}
	for id, v := range s.visits {
		if v.PatientID == idLabel {
			delete(s.visits, id)
		}
	}
	delete(s.patients, idLabel)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// assemble builds a detached copy of a patient with its children. Callers
// hold at least the read lock.
func (s *MemoryStore) assemble(idLabel string) models.Patient {
	patient := clonePatient(s.patients[idLabel])
	patient.Records = []models.Record{}
	patient.Visits = []models.Visit{}
	for _, r := range s.records {
		if r.PatientID == idLabel {
			patient.Records = append(patient.Records, cloneRecord(r))
		}
	}
	for _, v := range s.visits {
		if v.PatientID == idLabel {
			patient.Visits = append(patient.Visits, cloneVisit(v))
		}
	}
	sort.Slice(patient.Records, func(i, j int) bool { return patient.Records[i].ID < patient.Records[j].ID })
	sort.Slice(patient.Visits, func(i, j int) bool { return patient.Visits[i].ID < patient.Visits[j].ID })
	return patient
}

func clonePatient(p models.Patient) models.Patient {
	out := p
	out.Sex = cloneString(p.Sex)
	out.Address = cloneString(p.Address)
	out.ParentName = cloneString(p.ParentName)
	out.Phone = cloneString(p.Phone)
	out.Allergies = cloneString(p.Allergies)
	out.Email = cloneString(p.Email)
	out.Records = nil
	out.Visits = nil
	return out
}

func cloneRecord(r models.Record) models.Record {
	out := r
	out.Milestone = cloneString(r.Milestone)
	out.VaxName = cloneString(r.VaxName)
	out.Status = cloneString(r.Status)
	out.Observations = cloneString(r.Observations)
	return out
}

func cloneVisit(v models.Visit) models.Visit {
	out := v
	out.Weight = cloneFloat(v.Weight)
	out.Height = cloneFloat(v.Height)
	out.Imc = cloneFloat(v.Imc)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
