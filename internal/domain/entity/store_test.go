package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStore_AppliesDefaults(t *testing.T) {
	store := NewStore("S1", "Downtown", Coordinates{Latitude: 42.36, Longitude: -71.06})

	assert.Equal(t, StoreTypeRegular, store.StoreType)
	assert.Equal(t, StoreStatusActive, store.Status)
	assert.Equal(t, DefaultCountry, store.Address.Country)
	assert.Equal(t, ClosedAllWeek(), store.Hours)
	assert.Empty(t, store.Services)
}

func TestStoreUpdate_ApplyOnlySetFields(t *testing.T) {
	store := NewStore("S1", "Downtown", Coordinates{Latitude: 1, Longitude: 2})
	store.Phone = "555-0100"
	store.Services = []string{"pickup"}

	name := "Uptown"
	status := StoreStatusTemporarilyClosed
	update := &StoreUpdate{
		Name:   &name,
		Status: &status,
		Hours:  map[time.Weekday]string{time.Friday: "09:00-21:00"},
	}
	update.Apply(store)

	assert.Equal(t, "Uptown", store.Name)
	assert.Equal(t, StoreStatusTemporarilyClosed, store.Status)
	assert.Equal(t, "555-0100", store.Phone)
	assert.Equal(t, "09:00-21:00", store.Hours.Fri)
	assert.Equal(t, HoursClosed, store.Hours.Mon)
	assert.Equal(t, []string{"pickup"}, store.Services)
	assert.Equal(t, Coordinates{Latitude: 1, Longitude: 2}, store.Location)
}

func TestStoreUpdate_ServicesReplaceWholeSet(t *testing.T) {
	store := NewStore("S1", "Downtown", Coordinates{})
	store.Services = []string{"pickup", "optical"}

	services := []string{"pharmacy", "pharmacy"}
	(&StoreUpdate{Services: &services}).Apply(store)

	assert.Equal(t, []string{"pharmacy"}, store.Services)
}

func TestStoreUpdate_IsEmpty(t *testing.T) {
	assert.True(t, (&StoreUpdate{}).IsEmpty())

	phone := "1"
	assert.False(t, (&StoreUpdate{Phone: &phone}).IsEmpty())

	none := []string{}
	assert.False(t, (&StoreUpdate{Services: &none}).IsEmpty())
}

func TestAddress_GeocodeQuery(t *testing.T) {
	addr := Address{Street: "1 Main St", City: "Boston", State: "MA", Country: " "}

	assert.Equal(t, "1 Main St, Boston, MA", addr.GeocodeQuery())
	assert.False(t, addr.IsComplete())
}

func TestRole_Permissions(t *testing.T) {
	assert.True(t, RoleAdmin.Can(PermissionUsersDelete))
	assert.True(t, RoleMarketer.Can(PermissionStoresImport))
	assert.False(t, RoleMarketer.Can(PermissionUsersRead))
	assert.True(t, RoleViewer.Can(PermissionStoresRead))
	assert.False(t, RoleViewer.Can(PermissionStoresUpdate))

	roles := RolesFromStrings([]string{"viewer", "bogus"})
	assert.Equal(t, Roles{RoleViewer}, roles)
	assert.False(t, roles.Can(PermissionStoresCreate))
}
