package models

import (
	"time"

	"github.com/google/uuid"
)

type Professional struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Specialty string `gorm:"size:100;not null" json:"specialty"`
	Photo     string `gorm:"size:512" json:"photo"`

	Services []ProfessionalService `gorm:"constraint:OnDelete:CASCADE;" json:"services,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
