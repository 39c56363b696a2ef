// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"
	"time"

	"casefile/internal/errors"

	"github.com/google/uuid"
)

// Geographic coordinate bounds in degrees (WGS 84).
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// Coordinate validation errors.
var (
	// ErrCoordinateArity is returned when a coordinate pair does not have exactly two components.
	ErrCoordinateArity = errors.New("coordinates must have exactly two components: longitude, latitude")
	// ErrCoordinateRange is returned when longitude or latitude falls outside the WGS 84 bounds.
	ErrCoordinateRange = errors.New("coordinates out of range")
	// ErrCoordinateNotFinite is returned when a coordinate component is NaN or infinite.
	ErrCoordinateNotFinite = errors.New("coordinates must be finite numbers")
)

// Case is the investigative aggregate. It owns its embedded entities, evidence
// items and timeline events; none of those exist outside a Case, and deleting a
// Case removes all of them.
type Case struct {
	ID              uuid.UUID       // The Global Unique Identifier (GUID) for the case.
	Title           string          // Short human-readable title. Required.
	Description     string          // Free-form narrative. Optional.
	Type            string          // Case category used for exact-match lookup (secondary index).
	Status          CaseStatus      // Lifecycle status. Transitions are free-form.
	Location        Location        // Where the case happened. Coordinates are optional.
	Agency          string          // Owning agency. Required.
	AssignedOfficer *uuid.UUID      // Weak reference to a User ID. Never enforced, never cascaded.
	Entities        []CaseEntity    // Involved entities in insertion (chronological) order.
	Evidence        []EvidenceItem  // Evidence references in insertion order.
	Timeline        []TimelineEvent // Audit trail in insertion order, append-mostly.
	CreatedAt       time.Time       // Timestamp of when this case was created.
	UpdatedAt       time.Time       // Timestamp of the last modification to this case.
}

// Location describes where a case took place. A nil Point means the case has no
// geospatial position and is excluded from every proximity query.
type Location struct {
	Point   *GeoPoint // Optional GeoJSON-style point.
	Address string    // Human-readable address. Optional.
}

// GeoPoint is a WGS 84 coordinate pair.
type GeoPoint struct {
	Longitude float64
	Latitude  float64
}

// NewGeoPoint builds a GeoPoint from a GeoJSON-style coordinate slice
// (longitude first). It enforces arity, finiteness and range.
func NewGeoPoint(coordinates []float64) (*GeoPoint, error) {
	if len(coordinates) != 2 {
		return nil, ErrCoordinateArity
	}

	point := &GeoPoint{Longitude: coordinates[0], Latitude: coordinates[1]}
	if err := point.Validate(); err != nil {
		return nil, err
	}

	return point, nil
}

// Validate checks that the point lies within the WGS 84 bounds.
func (p *GeoPoint) Validate() error {
	for _, component := range []float64{p.Longitude, p.Latitude} {
		if math.IsNaN(component) || math.IsInf(component, 0) {
			return ErrCoordinateNotFinite
		}
	}
	if p.Longitude < MinLongitude || p.Longitude > MaxLongitude {
		return errors.Wrapf(ErrCoordinateRange, "longitude %v not in [%v, %v]", p.Longitude, MinLongitude, MaxLongitude)
	}
	if p.Latitude < MinLatitude || p.Latitude > MaxLatitude {
		return errors.Wrapf(ErrCoordinateRange, "latitude %v not in [%v, %v]", p.Latitude, MinLatitude, MaxLatitude)
	}

	return nil
}

// CaseEntity is a person, vehicle, phone or location involved in a case.
// It is owned exclusively by its parent Case and has no identity of its own.
type CaseEntity struct {
	Type     EntityType     // What kind of entity this is.
	Value    string         // The identifying value (name, plate, number, address).
	Metadata map[string]any // Schema-less payload. Callers define its shape; the core never inspects it.
}

// EvidenceItem references an externally stored file. The core never
// dereferences FileURL; the bytes live with an external collaborator.
type EvidenceItem struct {
	FileURL    string
	FileType   string
	UploadedAt time.Time
}

// TimelineEvent records an action taken on a case. User is a display identity,
// not a reference.
type TimelineEvent struct {
	Action    string
	Timestamp time.Time
	User      string
}
