package models

import "time"

type CacheMetadataModel struct {
	ID               uint   `gorm:"primaryKey"`
	FilePath         string `gorm:"type:varchar(255);not null"`
	TotalCountries   int    `gorm:"not null"`
	TopCountriesJSON string `gorm:"column:top_countries_json;type:text;not null"`
	LastRefreshedAt  time.Time
}

func (CacheMetadataModel) TableName() string {
	return "cache_metadata"
}
