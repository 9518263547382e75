package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. The primary key is the externally assigned store ID.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type StoreModel struct {
	StoreID           string  `gorm:"type:varchar(50);primaryKey"`
	Name              string  `gorm:"type:varchar(255);not null"`
	StoreType         string  `gorm:"type:varchar(20);not null;default:regular;index"`
	Status            string  `gorm:"type:varchar(30);not null;default:active;index"`
	Latitude          float64 `gorm:"not null;index:idx_stores_lat_lon,priority:1"`
	Longitude         float64 `gorm:"not null;index:idx_stores_lat_lon,priority:2"`
	AddressStreet     string  `gorm:"type:varchar(255)"`
	AddressCity       string  `gorm:"type:varchar(100)"`
	AddressState      string  `gorm:"type:varchar(50)"`
	AddressPostalCode string  `gorm:"type:varchar(20);index"`
	AddressCountry    string  `gorm:"type:varchar(50);not null;default:USA"`
	Phone             string  `gorm:"type:varchar(50)"`
	HoursMon          string  `gorm:"type:varchar(20);not null;default:closed"`
	HoursTue          string  `gorm:"type:varchar(20);not null;default:closed"`
	HoursWed          string  `gorm:"type:varchar(20);not null;default:closed"`
	HoursThu          string  `gorm:"type:varchar(20);not null;default:closed"`
	HoursFri          string  `gorm:"type:varchar(20);not null;default:closed"`
	HoursSat          string  `gorm:"type:varchar(20);not null;default:closed"`
	HoursSun          string  `gorm:"type:varchar(20);not null;default:closed"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// ServiceTagModel mirrors the 'service_tags' table. Names are unique so that
// tag creation can be an insert-or-ignore keyed by name.
type ServiceTagModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceTagModel) TableName() string {
	return "service_tags"
}

// StoreServiceModel mirrors the 'store_services' join table.
type StoreServiceModel struct {
	StoreID      string    `gorm:"type:varchar(50);primaryKey"`
	ServiceTagID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (StoreServiceModel) TableName() string {
	return "store_services"
}
