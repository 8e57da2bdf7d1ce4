package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalService é a oferta de um serviço por um profissional.
type ProfessionalService struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ProfessionalID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_professional_service_pair" json:"professionalId"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional,omitempty"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_professional_service_pair" json:"serviceId"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
