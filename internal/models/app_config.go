package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Value types accepted in AppConfig.Type.
const (
	ConfigTypeString  = "string"
	ConfigTypeJSON    = "json"
	ConfigTypeNumber  = "number"
	ConfigTypeBoolean = "boolean"
)

// AppConfig is a dynamically editable setting consumed by client apps, such as
// trust indicators or disclaimers. Keys follow a "category.subkey" convention.
type AppConfig struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Key         string    `json:"key" gorm:"uniqueIndex;type:varchar(100);not null"`
	Value       string    `json:"value" gorm:"type:text;not null"`
	Type        string    `json:"type" gorm:"type:varchar(50);default:string"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the table name singular.
func (AppConfig) TableName() string {
	return "app_config"
}

// BeforeCreate assigns a UUID primary key and the default type.
func (c *AppConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Type == "" {
		c.Type = ConfigTypeString
	}
	return nil
}

// DecodedValue interprets Value according to Type.
func (c *AppConfig) DecodedValue() ConfigValue {
	return DecodeConfigValue(c.Value, c.Type)
}
