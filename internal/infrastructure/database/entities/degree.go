package entities

import (
	"time"

	"github.com/matsols/matsols-api/internal/domain/degree"
)

// Degree represents the database schema for the degree catalog.
type Degree struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Slug                  string  `gorm:"type:varchar(191);uniqueIndex;not null"`
	Name                  string  `gorm:"type:varchar(255);index;not null"`
	Code                  *string `gorm:"type:varchar(64)"`
	Level                 *string `gorm:"type:varchar(64);index"`
	About                 *string `gorm:"type:text"`
	KeyInformation        *string `gorm:"type:text"`
	Overview              *string `gorm:"type:text"`
	Structure             *string `gorm:"type:text"`
	AdmissionRequirements *string `gorm:"type:text"`
	Fees                  *string `gorm:"type:text"`
	Scholarships          *string `gorm:"type:text"`
	VisaInfo              *string `gorm:"type:text"`
	WorkPermit            *string `gorm:"type:text"`
	TuitionFee            *string `gorm:"type:text"`
	Duration              *string `gorm:"type:text"`
	ApplyDate             *string `gorm:"type:text"`
	Intake                *string `gorm:"type:text"`
	CampusLocation        *string `gorm:"type:text"`
	TaughtIn              *string `gorm:"type:text"`
	UniversityAffiliation *string `gorm:"type:text"`
	Progression           *string `gorm:"type:text"`
	FAQs                  *string `gorm:"column:faqs;type:text"`
}

// TableName specifies the table name for Degree.
func (Degree) TableName() string {
	return "degrees"
}

// DegreeUpsertColumns are overwritten when a slug already exists.
var DegreeUpsertColumns = []string{
	"name", "code", "level", "about", "key_information", "overview", "structure",
	"admission_requirements", "fees", "scholarships", "visa_info", "work_permit",
	"tuition_fee", "duration", "apply_date", "intake", "campus_location", "taught_in",
	"university_affiliation", "progression", "faqs", "updated_at",
}

// NewSchemaDegree converts a domain degree to its schema row.
func NewSchemaDegree(d *degree.Degree) *Degree {
	return &Degree{
		ID:                    d.ID,
		Slug:                  d.Slug,
		Name:                  d.Name,
		Code:                  d.Code,
		Level:                 d.Level,
		About:                 d.About,
		KeyInformation:        d.KeyInformation,
		Overview:              d.Overview,
		Structure:             d.Structure,
		AdmissionRequirements: d.AdmissionRequirements,
		Fees:                  d.Fees,
		Scholarships:          d.Scholarships,
		VisaInfo:              d.VisaInfo,
		WorkPermit:            d.WorkPermit,
		TuitionFee:            d.TuitionFee,
		Duration:              d.Duration,
		ApplyDate:             d.ApplyDate,
		Intake:                d.Intake,
		CampusLocation:        d.CampusLocation,
		TaughtIn:              d.TaughtIn,
		UniversityAffiliation: d.UniversityAffiliation,
		Progression:           d.Progression,
		FAQs:                  d.FAQs,
	}
}

// EtoD converts the row to a domain degree.
func (e *Degree) EtoD() *degree.Degree {
	return &degree.Degree{
		ID:                    e.ID,
		Slug:                  e.Slug,
		Name:                  e.Name,
		Code:                  e.Code,
		Level:                 e.Level,
		About:                 e.About,
		KeyInformation:        e.KeyInformation,
		Overview:              e.Overview,
		Structure:             e.Structure,
		AdmissionRequirements: e.AdmissionRequirements,
		Fees:                  e.Fees,
		Scholarships:          e.Scholarships,
		VisaInfo:              e.VisaInfo,
		WorkPermit:            e.WorkPermit,
		TuitionFee:            e.TuitionFee,
		Duration:              e.Duration,
		ApplyDate:             e.ApplyDate,
		Intake:                e.Intake,
		CampusLocation:        e.CampusLocation,
		TaughtIn:              e.TaughtIn,
		UniversityAffiliation: e.UniversityAffiliation,
		Progression:           e.Progression,
		FAQs:                  e.FAQs,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}
