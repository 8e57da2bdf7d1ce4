package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente é o perfil de um usuário que agenda atendimentos.
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Phone     string    `gorm:"size:20" json:"phone"`
	BirthDate time.Time `json:"birthDate"`
	Gender    string    `gorm:"size:1" json:"gender"`
	Photo     string    `gorm:"size:512" json:"photo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
