package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a customer rating of a product. Rating is expected in 1..5 but is
// not checked on write.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);not null;index"`
	UserName  string    `json:"user_name" gorm:"type:varchar(100);not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   *string   `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate assigns a UUID primary key when none was set.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
