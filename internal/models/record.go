package models

// Record is one vaccination milestone of a patient.
type Record struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	PatientID    string  `json:"patientId" gorm:"column:patient_id;not null;index"` // owner's id_label
	Milestone    *string `json:"milestone"`
	VaxName      *string `json:"vaxName"`
	DueDate      Date    `json:"dueDate" gorm:"type:date"`
	Status       *string `json:"status"`
	DateGiven    Date    `json:"dateGiven" gorm:"type:date"`
	Observations *string `json:"observations"`
}

func (Record) TableName() string { return "records" }
