package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salt is an active ingredient and its strength in a product.
type Salt struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);not null;index"`
	SaltName  string    `json:"salt_name" gorm:"type:varchar(100);not null"`
	Strength  string    `json:"strength" gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was set.
func (s *Salt) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
