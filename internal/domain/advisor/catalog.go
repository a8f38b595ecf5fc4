package advisor

import (
	"context"

	"github.com/matsols/matsols-api/internal/domain/degree"
)

// CatalogCorpus reads corpus records from the degree catalog. A degree's
// about text is its description.
type CatalogCorpus struct {
	degrees degree.Service
}

// NewCatalogCorpus adapts the degree catalog to CorpusReader.
func NewCatalogCorpus(degrees degree.Service) *CatalogCorpus {
	return &CatalogCorpus{degrees: degrees}
}

// FindMatching implements CorpusReader.
func (c *CatalogCorpus) FindMatching(ctx context.Context, keywords []string, limit int) ([]CorpusRecord, error) {
	degrees, err := c.degrees.Search(ctx, keywords, limit)
	if err != nil {
		return nil, err
	}

	records := make([]CorpusRecord, 0, len(degrees))
	for _, d := range degrees {
		records = append(records, CorpusRecord{
			Slug:        d.Slug,
			Name:        d.Name,
			Description: d.About,
		})
	}
	return records, nil
}
