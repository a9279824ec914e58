package models

// Visit is one growth measurement of a patient. Imc is the body-mass index.
type Visit struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	PatientID string   `json:"patientId" gorm:"column:patient_id;not null;index"` // owner's id_label
	VisitDate Date     `json:"visitDate" gorm:"type:date"`
	Weight    *float64 `json:"weight"`
	Height    *float64 `json:"height"`
	Imc       *float64 `json:"imc"`
}

func (Visit) TableName() string { return "visits" }
