package search

import (
	"fmt"

	"property-analyst/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

// QuickSearchClient wraps the optional Meilisearch index used by the
// dashboard's instant search box. The canonical search route never touches
// it; it serves prefix/typo-tolerant lookups only.
type QuickSearchClient struct {
	client *meilisearch.Client
	index  string
}

// NewQuickSearchClient creates a client for the quick-search index
func NewQuickSearchClient(host, apiKey string) *QuickSearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &QuickSearchClient{
		client: client,
		index:  "properties",
	}
}

// PropertyDocument is the indexed shape of a listing
type PropertyDocument struct {
	ID           string  `json:"id"`
	BrokerID     string  `json:"broker_id"`
	PropertyType string  `json:"property_type"`
	Status       string  `json:"status"`
	City         string  `json:"city"`
	Area         string  `json:"area"`
	Locality     string  `json:"locality"`
	Address      string  `json:"address"`
	SurveyNo     string  `json:"survey_no"`
	Notes        string  `json:"notes"`
	TotalPrice   float64 `json:"total_price"`
}

func toDocument(p *models.Property) PropertyDocument {
	doc := PropertyDocument{
		ID:           p.ID,
		BrokerID:     p.BrokerID,
		PropertyType: string(p.PropertyType),
		Status:       string(p.Status),
		City:         p.City,
		Area:         p.Area,
		Locality:     p.Locality,
		Address:      p.Address,
		SurveyNo:     p.SurveyNo,
		Notes:        p.Notes,
	}
	if p.TotalPrice != nil {
		doc.TotalPrice = *p.TotalPrice
	}
	return doc
}

// InitIndex initializes the quick-search index
func (s *QuickSearchClient) InitIndex() error {
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"city",
		"area",
		"locality",
		"address",
		"survey_no",
		"notes",
	})
	if err != nil {
		return err
	}

	// broker_id filtering keeps every query inside one broker's partition
	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"broker_id",
		"property_type",
		"status",
	})
	return err
}

// IndexProperty indexes a single property
func (s *QuickSearchClient) IndexProperty(p *models.Property) error {
	_, err := s.client.Index(s.index).AddDocuments([]PropertyDocument{toDocument(p)})
	return err
}

// IndexProperties indexes multiple properties
func (s *QuickSearchClient) IndexProperties(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	docs := make([]PropertyDocument, 0, len(properties))
	for i := range properties {
		docs = append(docs, toDocument(&properties[i]))
	}
	_, err := s.client.Index(s.index).AddDocuments(docs)
	return err
}

// DeleteProperty drops a listing from the index
func (s *QuickSearchClient) DeleteProperty(id string) error {
	_, err := s.client.Index(s.index).DeleteDocument(id)
	return err
}

// QuickSearch queries the index scoped to one broker
func (s *QuickSearchClient) QuickSearch(brokerID, query string, limit int64) ([]PropertyDocument, error) {
	if limit == 0 {
		limit = 20
	}

	res, err := s.client.Index(s.index).Search(query, &meilisearch.SearchRequest{
		Limit:  limit,
		Filter: fmt.Sprintf("broker_id = %q", brokerID),
	})
	if err != nil {
		return nil, err
	}

	docs := make([]PropertyDocument, 0, len(res.Hits))
	for _, hit := range res.Hits {
		docs = append(docs, parseDocumentFromHit(hit))
	}
	return docs, nil
}

// parseDocumentFromHit converts a search hit back to a PropertyDocument
func parseDocumentFromHit(hit interface{}) PropertyDocument {
	hitMap, ok := hit.(map[string]interface{})
	if !ok {
		return PropertyDocument{}
	}
	doc := PropertyDocument{
		ID:           getString(hitMap, "id"),
		BrokerID:     getString(hitMap, "broker_id"),
		PropertyType: getString(hitMap, "property_type"),
		Status:       getString(hitMap, "status"),
		City:         getString(hitMap, "city"),
		Area:         getString(hitMap, "area"),
		Locality:     getString(hitMap, "locality"),
		Address:      getString(hitMap, "address"),
		SurveyNo:     getString(hitMap, "survey_no"),
		Notes:        getString(hitMap, "notes"),
	}
	if price, ok := hitMap["total_price"].(float64); ok {
		doc.TotalPrice = price
	}
	return doc
}

// getString safely extracts a string from map
func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
