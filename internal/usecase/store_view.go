// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"locator/internal/domain/entity"
)

// StoreView is the flat, serialisable representation of a store returned to callers
// and kept in the search result cache.
type StoreView struct {
	StoreID           string             `json:"store_id"`
	Name              string             `json:"name"`
	StoreType         entity.StoreType   `json:"store_type"`
	Status            entity.StoreStatus `json:"status"`
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	AddressStreet     string             `json:"address_street"`
	AddressCity       string             `json:"address_city"`
	AddressState      string             `json:"address_state"`
	AddressPostalCode string             `json:"address_postal_code"`
	AddressCountry    string             `json:"address_country"`
	Phone             string             `json:"phone"`
	Services          []string           `json:"services"`
	HoursMon          string             `json:"hours_mon"`
	HoursTue          string             `json:"hours_tue"`
	HoursWed          string             `json:"hours_wed"`
	HoursThu          string             `json:"hours_thu"`
	HoursFri          string             `json:"hours_fri"`
	HoursSat          string             `json:"hours_sat"`
	HoursSun          string             `json:"hours_sun"`
}

// NewStoreView flattens a store entity.
func NewStoreView(store *entity.Store) StoreView {
	services := store.Services
	if services == nil {
		services = []string{}
	}

	return StoreView{
		StoreID:           store.StoreID,
		Name:              store.Name,
		StoreType:         store.StoreType,
		Status:            store.Status,
		Latitude:          store.Location.Latitude,
		Longitude:         store.Location.Longitude,
		AddressStreet:     store.Address.Street,
		AddressCity:       store.Address.City,
		AddressState:      store.Address.State,
		AddressPostalCode: store.Address.PostalCode,
		AddressCountry:    store.Address.Country,
		Phone:             store.Phone,
		Services:          services,
		HoursMon:          store.Hours.Mon,
		HoursTue:          store.Hours.Tue,
		HoursWed:          store.Hours.Wed,
		HoursThu:          store.Hours.Thu,
		HoursFri:          store.Hours.Fri,
		HoursSat:          store.Hours.Sat,
		HoursSun:          store.Hours.Sun,
	}
}
