package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID   *uuid.UUID `gorm:"type:uuid" json:"userId"`
	Action   string     `gorm:"size:50;not null;index" json:"action"`
	Entity   string     `gorm:"size:50;index" json:"entity"`
	EntityID *uuid.UUID `gorm:"type:uuid" json:"entityId"`
	Metadata string     `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
