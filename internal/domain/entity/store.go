package entity

import (
	"time"
)

// StoreType categorises a store by format.
type StoreType string

const (
	StoreTypeFlagship StoreType = "flagship"
	StoreTypeRegular  StoreType = "regular"
	StoreTypeOutlet   StoreType = "outlet"
	StoreTypeExpress  StoreType = "express"
)

// IsValid checks if the StoreType is a valid value.
func (t StoreType) IsValid() bool {
	switch t {
	case StoreTypeFlagship, StoreTypeRegular, StoreTypeOutlet, StoreTypeExpress:
		return true
	default:
		return false
	}
}

// StoreStatus is the lifecycle state of a store. Stores are never hard-deleted;
// deactivation moves them to StoreStatusInactive.
type StoreStatus string

const (
	StoreStatusActive            StoreStatus = "active"
	StoreStatusInactive          StoreStatus = "inactive"
	StoreStatusTemporarilyClosed StoreStatus = "temporarily_closed"
)

// IsValid checks if the StoreStatus is a valid value.
func (s StoreStatus) IsValid() bool {
	switch s {
	case StoreStatusActive, StoreStatusInactive, StoreStatusTemporarilyClosed:
		return true
	default:
		return false
	}
}

// Store is a physical retail location identified by an externally assigned store ID.
type Store struct {
	StoreID   string // Externally assigned identifier, e.g. "S0001".
	Name      string
	StoreType StoreType
	Status    StoreStatus
	Location  Coordinates
	Address   Address
	Phone     string
	Hours     WeeklyHours
	Services  []string // Deduplicated service tag names.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStore returns a store carrying the defaults applied to newly created records.
func NewStore(storeID, name string, location Coordinates) *Store {
	return &Store{
		StoreID:   storeID,
		Name:      name,
		StoreType: StoreTypeRegular,
		Status:    StoreStatusActive,
		Location:  location,
		Address:   Address{Country: DefaultCountry},
		Hours:     ClosedAllWeek(),
		Services:  []string{},
	}
}

// IsOpenAt reports whether the store is trading at t. Only active stores can be open,
// and the weekday and clock time are read from t in its own location.
func (s *Store) IsOpenAt(t time.Time) bool {
	if s.Status != StoreStatusActive {
		return false
	}

	return hoursContain(s.Hours.For(t.Weekday()), t)
}

// StoreUpdate carries a partial update. Nil fields are left untouched.
type StoreUpdate struct {
	Name       *string
	StoreType  *StoreType
	Status     *StoreStatus
	Location   *Coordinates
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
	Phone      *string
	Hours      map[time.Weekday]string

	// Services replaces the whole tag set when non-nil.
	Services *[]string
}

// IsEmpty reports whether the update would change nothing.
func (u *StoreUpdate) IsEmpty() bool {
	return u.Name == nil && u.StoreType == nil && u.Status == nil && u.Location == nil &&
		u.Street == nil && u.City == nil && u.State == nil && u.PostalCode == nil &&
		u.Country == nil && u.Phone == nil && len(u.Hours) == 0 && u.Services == nil
}

// Apply copies every set field onto store.
func (u *StoreUpdate) Apply(store *Store) {
	if u.Name != nil {
		store.Name = *u.Name
	}
	if u.StoreType != nil {
		store.StoreType = *u.StoreType
	}
	if u.Status != nil {
		store.Status = *u.Status
	}
	if u.Location != nil {
		store.Location = *u.Location
	}
	if u.Street != nil {
		store.Address.Street = *u.Street
	}
	if u.City != nil {
		store.Address.City = *u.City
	}
	if u.State != nil {
		store.Address.State = *u.State
	}
	if u.PostalCode != nil {
		store.Address.PostalCode = *u.PostalCode
	}
	if u.Country != nil {
		store.Address.Country = *u.Country
	}
	if u.Phone != nil {
		store.Phone = *u.Phone
	}
	for day, hours := range u.Hours {
		store.Hours.Set(day, hours)
	}
	if u.Services != nil {
		store.Services = NormalizeServiceNames(*u.Services)
	}
}
