package degree

import "time"

// Degree is a study programme offered through a partner university.
// Slug is the stable public key; every descriptive field is optional.
type Degree struct {
	ID                    uint      `json:"id"`
	Slug                  string    `json:"slug"`
	Name                  string    `json:"name"`
	Code                  *string   `json:"code"`
	Level                 *string   `json:"level"`
	About                 *string   `json:"about"`
	KeyInformation        *string   `json:"key_information"`
	Overview              *string   `json:"overview"`
	Structure             *string   `json:"structure"`
	AdmissionRequirements *string   `json:"admission_requirements"`
	Fees                  *string   `json:"fees"`
	Scholarships          *string   `json:"scholarships"`
	VisaInfo              *string   `json:"visa_info"`
	WorkPermit            *string   `json:"work_permit"`
	TuitionFee            *string   `json:"tuition_fee"`
	Duration              *string   `json:"duration"`
	ApplyDate             *string   `json:"apply_date"`
	Intake                *string   `json:"intake"`
	CampusLocation        *string   `json:"campus_location"`
	TaughtIn              *string   `json:"taught_in"`
	UniversityAffiliation *string   `json:"university_affiliation"`
	Progression           *string   `json:"progression"`
	FAQs                  *string   `json:"faqs"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
