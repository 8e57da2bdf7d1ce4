package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	Client   Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ProfessionalServiceID uuid.UUID           `gorm:"type:uuid;not null;index" json:"professionalServiceId"`
	ProfessionalService   ProfessionalService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professionalService"`

	DateTime    time.Time `gorm:"not null;index" json:"dateTime"`
	Status      string    `gorm:"size:20;default:'pending'" json:"status"`
	Observation string    `gorm:"size:255" json:"observation"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
