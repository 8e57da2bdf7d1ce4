package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID fills an empty primary key before insert so the schema does not
// depend on a database-side uuid generator.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (p *Professional) BeforeCreate(*gorm.DB) error {
	newID(&p.ID)
	return nil
}

func (c *Client) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}

func (s *Service) BeforeCreate(*gorm.DB) error {
	newID(&s.ID)
	return nil
}

func (ps *ProfessionalService) BeforeCreate(*gorm.DB) error {
	newID(&ps.ID)
	return nil
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	newID(&a.ID)
	return nil
}

func (l *AuditLog) BeforeCreate(*gorm.DB) error {
	newID(&l.ID)
	return nil
}
