package models

import "time"

type CountryModel struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"type:varchar(191);uniqueIndex;not null"`
	Capital         *string `gorm:"type:varchar(191)"`
	Region          *string `gorm:"type:varchar(191);index"`
	Population      *int64
	CurrencyCode    *string `gorm:"type:varchar(32)"`
	ExchangeRate    *float64
	EstimatedGDP    *float64 `gorm:"column:estimated_gdp"`
	FlagURL         *string  `gorm:"column:flag_url;type:varchar(255)"`
	LastRefreshedAt *time.Time
}

func (CountryModel) TableName() string {
	return "countries"
}
