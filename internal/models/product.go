package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a medicine listed in the catalog.
//
// Uses, SideEffects and FAQContent hold JSON documents in text columns. They are
// decoded leniently on read: an empty or malformed column reads as an empty list.
type Product struct {
	ID                   string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name                 string  `json:"name" gorm:"type:varchar(150);not null"`
	Brand                string  `json:"brand" gorm:"type:varchar(100);not null"`
	Price                float64 `json:"price" gorm:"not null"`
	AvgRating            float64 `json:"avg_rating" gorm:"default:0"`
	ChemicalForm         string  `json:"chemical_form" gorm:"type:varchar(200)"`
	ImageURL             string  `json:"image_url" gorm:"type:text"`
	GenericName          string  `json:"generic_name" gorm:"type:varchar(100)"`
	Category             string  `json:"category" gorm:"type:varchar(100)"`
	Description          string  `json:"description" gorm:"type:text"`
	Dosage               string  `json:"dosage" gorm:"type:varchar(100)"`
	PackSize             string  `json:"pack_size" gorm:"type:varchar(50)"`
	PrescriptionRequired bool    `json:"prescription_required" gorm:"default:false"`
	Uses                 string  `json:"uses" gorm:"type:text"`
	SideEffects          string  `json:"side_effects" gorm:"type:text"`
	HowItWorks           string  `json:"how_it_works" gorm:"type:text"`
	FAQContent           string  `json:"faq_content" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`

	Salts        []Salt        `json:"salts,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews      []Review      `json:"reviews,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Descriptions []Description `json:"descriptions,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key when none was set.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// UsesList decodes the stored uses column.
func (p *Product) UsesList() []string {
	return decodeStringList(p.Uses)
}

// SideEffectsList decodes the stored side effects column.
func (p *Product) SideEffectsList() []string {
	return decodeStringList(p.SideEffects)
}

// FAQEntries decodes the stored FAQ column. Entries keep whatever keys they were
// written with (usually "question" and "answer").
func (p *Product) FAQEntries() []map[string]interface{} {
	entries := []map[string]interface{}{}
	if p.FAQContent == "" {
		return entries
	}
	if err := json.Unmarshal([]byte(p.FAQContent), &entries); err != nil || entries == nil {
		return []map[string]interface{}{}
	}
	return entries
}

// SetUses encodes uses into the text column.
func (p *Product) SetUses(uses []string) {
	p.Uses = encodeJSON(uses)
}

// SetSideEffects encodes side effects into the text column.
func (p *Product) SetSideEffects(effects []string) {
	p.SideEffects = encodeJSON(effects)
}

// SetFAQEntries encodes FAQ entries into the text column.
func (p *Product) SetFAQEntries(entries []map[string]interface{}) {
	p.FAQContent = encodeJSON(entries)
}

func decodeStringList(raw string) []string {
	list := []string{}
	if raw == "" {
		return list
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

func encodeJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
