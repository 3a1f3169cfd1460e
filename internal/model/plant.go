package model

// Plant 植物目录条目，启动时播种后只读
type Plant struct {
	ID            string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string   `gorm:"size:100;not null" json:"name"`
	BotanicalName string   `gorm:"size:150" json:"botanical_name"`
	Description   string   `gorm:"type:text" json:"description"`
	Sunlight      string   `gorm:"size:50" json:"sunlight"`
	Water         string   `gorm:"size:50" json:"water"`
	Soil          string   `gorm:"size:255" json:"soil"`
	Difficulty    string   `gorm:"size:20;index" json:"difficulty"`
	GrowingTime   string   `gorm:"size:50" json:"growing_time"`
	HarvestSeason string   `gorm:"size:100" json:"harvest_season"`
	CareTips      []string `gorm:"type:text;serializer:json" json:"care_tips"`
	ImageURL      string   `gorm:"size:500" json:"image_url"`
	Category      string   `gorm:"size:50;index" json:"category"`
}

func (Plant) TableName() string {
	return "plants"
}
