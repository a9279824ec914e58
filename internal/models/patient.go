package models

// Patient is the root record, identified by a human-assigned label. It owns
// its vaccination records and growth visits: they are written with it and
// deleted with it.
type Patient struct {
	IDLabel    string  `json:"idLabel" gorm:"column:id_label;primaryKey"`
	Name       string  `json:"name" gorm:"not null"`
	Dob        Date    `json:"dob" gorm:"type:date"`
	Sex        *string `json:"sex"`
	Address    *string `json:"address"`
	ParentName *string `json:"parentName"`
	Phone      *string `json:"phone"`
	Allergies  *string `json:"allergies"`
	Email      *string `json:"email"`

	Records []Record `json:"records" gorm:"foreignKey:PatientID;references:IDLabel;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Visits  []Visit  `json:"visits" gorm:"foreignKey:PatientID;references:IDLabel;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName pins the table name used by the schema.
func (Patient) TableName() string { return "patients" }
