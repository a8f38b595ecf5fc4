// Package seed loads catalog fixtures from YAML and writes them through the
// domain services.
package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/update"
)

// DegreeRecord is one catalog entry in a degrees fixture.
type DegreeRecord struct {
	Slug                  string `yaml:"slug"`
	Name                  string `yaml:"name"`
	Code                  string `yaml:"code"`
	Level                 string `yaml:"level"`
	About                 string `yaml:"about"`
	KeyInformation        string `yaml:"keyInformation"`
	Overview              string `yaml:"overview"`
	Structure             string `yaml:"structure"`
	AdmissionRequirements string `yaml:"admissionRequirements"`
	Fees                  string `yaml:"fees"`
	Scholarships          string `yaml:"scholarships"`
	VisaInfo              string `yaml:"visaInfo"`
	WorkPermit            string `yaml:"workPermit"`
	TuitionFee            string `yaml:"tuitionFee"`
	Duration              string `yaml:"duration"`
	ApplyDate             string `yaml:"applyDate"`
	Intake                string `yaml:"intake"`
	CampusLocation        string `yaml:"campusLocation"`
	TaughtIn              string `yaml:"taughtIn"`
	UniversityAffiliation string `yaml:"universityAffiliation"`
	Progression           string `yaml:"progression"`
	FAQs                  string `yaml:"faqs"`
}

// UpdateRecord is one landing page card in an updates fixture.
type UpdateRecord struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	CTA      string `yaml:"cta"`
	Desc     string `yaml:"desc"`
	Subtitle string `yaml:"subtitle"`
	Image    string `yaml:"image"`
}

// UpdatesFile groups cards by landing page section.
type UpdatesFile struct {
	Hero []UpdateRecord `yaml:"hero"`
	Grid []UpdateRecord `yaml:"grid"`
}

// Report counts the outcome of a seed run.
type Report struct {
	Written int
	Failed  int
}

// DecodeDegrees parses a YAML list of degrees.
func DecodeDegrees(r io.Reader) ([]DegreeRecord, error) {
	var records []DegreeRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode degrees: %w", err)
	}
	return records, nil
}

// DecodeUpdates parses a YAML document with hero and grid sections.
func DecodeUpdates(r io.Reader) (*UpdatesFile, error) {
	var file UpdatesFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return &file, nil
		}
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return &file, nil
}

// Degrees upserts every record by slug. A failing record is logged and
// skipped so one bad entry does not abort the run.
func Degrees(ctx context.Context, svc degree.Service, records []DegreeRecord, log zerolog.Logger) Report {
	var report Report
	for _, rec := range records {
		if err := svc.Upsert(ctx, rec.toDomain()); err != nil {
			report.Failed++
			log.Error().Err(err).Str("slug", rec.Slug).Msg("seed degree")
			continue
		}
		report.Written++
		log.Info().Str("slug", rec.Slug).Str("level", rec.Level).Msg("seeded degree")
	}
	return report
}

// Updates creates every card. Hero cards are written before grid cards.
func Updates(ctx context.Context, svc update.Service, file *UpdatesFile, log zerolog.Logger) Report {
	var report Report
	write := func(category update.Category, records []UpdateRecord) {
		for _, rec := range records {
			if _, err := svc.Create(ctx, rec.toParams(category)); err != nil {
				report.Failed++
				log.Error().Err(err).Str("title", rec.Title).Msg("seed update")
				continue
			}
			report.Written++
			log.Info().Str("category", string(category)).Str("title", rec.Title).Msg("seeded update")
		}
	}
	write(update.CategoryHero, file.Hero)
	write(update.CategoryGrid, file.Grid)
	return report
}

func (r DegreeRecord) toDomain() *degree.Degree {
	return &degree.Degree{
		Slug:                  r.Slug,
		Name:                  r.Name,
		Code:                  optional(r.Code),
		Level:                 optional(r.Level),
		About:                 optional(r.About),
		KeyInformation:        optional(r.KeyInformation),
		Overview:              optional(r.Overview),
		Structure:             optional(r.Structure),
		AdmissionRequirements: optional(r.AdmissionRequirements),
		Fees:                  optional(r.Fees),
		Scholarships:          optional(r.Scholarships),
		VisaInfo:              optional(r.VisaInfo),
		WorkPermit:            optional(r.WorkPermit),
		TuitionFee:            optional(r.TuitionFee),
		Duration:              optional(r.Duration),
		ApplyDate:             optional(r.ApplyDate),
		Intake:                optional(r.Intake),
		CampusLocation:        optional(r.CampusLocation),
		TaughtIn:              optional(r.TaughtIn),
		UniversityAffiliation: optional(r.UniversityAffiliation),
		Progression:           optional(r.Progression),
		FAQs:                  optional(r.FAQs),
	}
}

func (r UpdateRecord) toParams(category update.Category) update.CreateParams {
	date := r.Date
	if date == "" {
		date = r.CTA
	}
	excerpt := r.Desc
	if excerpt == "" {
		excerpt = r.Subtitle
	}
	return update.CreateParams{
		Title:    r.Title,
		Category: category,
		Date:     date,
		Excerpt:  excerpt,
		Image:    optional(r.Image),
	}
}

// optional maps an empty fixture value to NULL.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
