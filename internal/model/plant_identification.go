package model

import "time"

type ParseMode string

const (
	ParseStrict   ParseMode = "strict"
	ParseFallback ParseMode = "fallback"
)

// PlantIdentification records one AI identification; never updated.
type PlantIdentification struct {
	ID               string                 `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID           string                 `gorm:"type:varchar(36);index;not null" json:"-"`
	PlantName        string                 `gorm:"size:150" json:"plant_name"`
	BotanicalName    string                 `gorm:"size:150" json:"botanical_name"`
	Confidence       string                 `gorm:"size:20" json:"confidence"`
	CareInstructions map[string]interface{} `gorm:"type:text;serializer:json" json:"care_instructions"`
	ParseMode        ParseMode              `gorm:"size:20" json:"parse_mode"`
	ImageURL         string                 `gorm:"size:500" json:"image_url,omitempty"`
	IdentifiedAt     time.Time              `gorm:"index" json:"identified_at"`
}

func (PlantIdentification) TableName() string {
	return "plant_identifications"
}
