package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Description types used by the storefront. The column itself is free text.
const (
	DescriptionTypeAbout       = "about"
	DescriptionTypeHowItWorks  = "how_it_works"
	DescriptionTypeSideEffects = "side_effects"
	DescriptionTypeFAQ         = "faq"
)

// Description is a typed block of product documentation.
type Description struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);not null;index"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Type      string    `json:"type" gorm:"type:varchar(50);not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was set.
func (d *Description) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
