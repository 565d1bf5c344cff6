// Package search resolves property queries for the dashboard. The primary
// pass is pushed to the database; owner-identity matching runs in memory
// because owners are a nested collection the property query cannot reach.
package search

import (
	"strings"

	"property-analyst/internal/models"

	"gorm.io/gorm"
)

// Params are the optional search inputs. Nil/empty fields are not applied.
type Params struct {
	Query string // free text across property columns

	// Exact filters
	Type      string
	Status    string
	BHK       *int
	Furnished string
	MinPrice  *float64
	MaxPrice  *float64

	// Partial filters
	Area      string
	City      string
	SurveyNo  string
	OwnerName string
}

// Resolver executes searches against the property store
type Resolver struct {
	db *gorm.DB
}

// NewResolver creates a search resolver
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve runs the layered search for one broker. The result is ordered by
// creation time descending and carries each property's owner list.
func (r *Resolver) Resolve(brokerID string, p Params) ([]models.Property, error) {
	query := r.db.Preload("Owners").Where("broker_id = ?", brokerID)

	if p.Type != "" {
		query = query.Where("property_type = ?", p.Type)
	}
	if p.Status != "" {
		query = query.Where("status = ?", p.Status)
	}
	if p.BHK != nil {
		query = query.Where("bhk = ?", *p.BHK)
	}
	if p.Furnished != "" {
		query = query.Where("furnished_status = ?", p.Furnished)
	}
	if p.MinPrice != nil {
		query = query.Where("total_price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		query = query.Where("total_price <= ?", *p.MaxPrice)
	}

	if p.Area != "" {
		query = query.Where("LOWER(area) LIKE ?", contains(p.Area))
	}
	if p.City != "" {
		query = query.Where("LOWER(city) LIKE ?", contains(p.City))
	}
	if p.SurveyNo != "" {
		query = query.Where("LOWER(survey_no) LIKE ?", contains(p.SurveyNo))
	}

	if p.Query != "" {
		term := contains(strings.TrimSpace(p.Query))
		query = query.Where(
			"LOWER(city) LIKE ? OR LOWER(area) LIKE ? OR LOWER(locality) LIKE ? OR LOWER(address) LIKE ? OR LOWER(survey_no) LIKE ? OR LOWER(notes) LIKE ?",
			term, term, term, term, term, term,
		)
	}

	var results []models.Property
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}

	// Owner-name filter runs after the query: owners are a joined collection.
	if p.OwnerName != "" {
		filtered := results[:0]
		for _, prop := range results {
			if ownersMatch(prop.Owners, p.OwnerName) {
				filtered = append(filtered, prop)
			}
		}
		results = filtered
	}

	// Fallback pass: a free-text query that matched no property columns may
	// still name an owner. Only an empty primary result triggers it; a
	// non-empty result skips the fallback even when the intended match is
	// missing from it.
	if p.Query != "" && p.OwnerName == "" && len(results) == 0 {
		term := strings.TrimSpace(p.Query)

		var all []models.Property
		err := r.db.Preload("Owners").
			Where("broker_id = ?", brokerID).
			Order("created_at DESC").
			Find(&all).Error
		if err != nil {
			return nil, err
		}

		for _, prop := range all {
			if ownersMatch(prop.Owners, term) {
				results = append(results, prop)
			}
		}
	}

	if results == nil {
		results = []models.Property{}
	}
	return results, nil
}

// ownersMatch reports whether any owner's name contains the term
// (case-insensitive) or phone number contains the raw term.
func ownersMatch(owners []models.PropertyOwner, term string) bool {
	lower := strings.ToLower(term)
	for _, o := range owners {
		if strings.Contains(strings.ToLower(o.OwnerName), lower) {
			return true
		}
		if o.PhoneNumber != "" && strings.Contains(o.PhoneNumber, term) {
			return true
		}
	}
	return false
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
