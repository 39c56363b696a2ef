package model

import (
	"time"

	"github.com/google/uuid"
)

// CaseModel mirrors the 'cases' table. PostgreSQL generates UUIDs via uuid_generate_v4().
//
// The geospatial index is an expression index over the same row the scalar
// columns live in, so an index entry can never diverge from the record:
//
//	CREATE INDEX idx_cases_location ON cases
//	USING gist (geography(ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)))
//	WHERE longitude IS NOT NULL AND latitude IS NOT NULL;
type CaseModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text"`
	Type            string     `gorm:"type:varchar(100);not null;index:idx_cases_on_type"`
	Status          string     `gorm:"type:varchar(32);not null;default:'Registered'"`
	Agency          string     `gorm:"type:varchar(255);not null;index:idx_cases_on_agency"`
	AssignedOfficer *uuid.UUID `gorm:"type:uuid"`
	Address         string     `gorm:"type:text"`
	Longitude       *float64   `gorm:"type:decimal(11,8)"`
	Latitude        *float64   `gorm:"type:decimal(10,8)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Entities []CaseEntityModel    `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
	Evidence []EvidenceItemModel  `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
	Timeline []TimelineEventModel `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CaseModel) TableName() string {
	return "cases"
}

// CaseEntityModel mirrors the 'case_entities' table. Rows are owned by their
// case (CASCADE) and ordered by the position column, which preserves
// insertion order.
type CaseEntityModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CaseID    uuid.UUID `gorm:"type:uuid;not null;index:idx_case_entities_on_case"`
	Position  int       `gorm:"not null"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Value     string    `gorm:"type:text;not null"`
	Metadata  JSONB     `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CaseEntityModel) TableName() string {
	return "case_entities"
}

// EvidenceItemModel mirrors the 'case_evidence' table. FileURL is an opaque
// locator; the blob itself lives with an external collaborator.
type EvidenceItemModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CaseID     uuid.UUID `gorm:"type:uuid;not null;index:idx_case_evidence_on_case"`
	Position   int       `gorm:"not null"`
	FileURL    string    `gorm:"type:text;not null"`
	FileType   string    `gorm:"type:varchar(100)"`
	UploadedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EvidenceItemModel) TableName() string {
	return "case_evidence"
}

// TimelineEventModel mirrors the 'case_timeline' table.
type TimelineEventModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CaseID    uuid.UUID `gorm:"type:uuid;not null;index:idx_case_timeline_on_case"`
	Position  int       `gorm:"not null"`
	Action    string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null"`
	User      string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (TimelineEventModel) TableName() string {
	return "case_timeline"
}
