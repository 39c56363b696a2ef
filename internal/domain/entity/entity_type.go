// Package entity contains the core business objects of the project.
package entity

// EntityType represents the kind of entity involved in a case.
type EntityType string

const (
	// EntityPerson indicates a person of interest.
	EntityPerson EntityType = "Person"
	// EntityVehicle indicates a vehicle.
	EntityVehicle EntityType = "Vehicle"
	// EntityPhone indicates a phone number or device.
	EntityPhone EntityType = "Phone"
	// EntityLocation indicates a place of interest.
	EntityLocation EntityType = "Location"
)

// String returns the string representation of the EntityType.
func (t EntityType) String() string {
	return string(t)
}

// IsValid checks if the EntityType is a valid value.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityPerson, EntityVehicle, EntityPhone, EntityLocation:
		return true
	default:
		return false
	}
}
