package search

import (
	"testing"

	"property-analyst/internal/database"
	"property-analyst/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	brokerA = "broker-a"
	brokerB = "broker-b"
)

func newTestResolver(t *testing.T) (*Resolver, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.NewFromGorm(gdb).InitSchema())
	return NewResolver(gdb), gdb
}

// seedScenario creates the broker-a dataset used across tests: P1 on Kalawad
// Road without owner-identity matches, P2 elsewhere but owned by Ramesh
// Patel, plus one unrelated property for broker-b.
func seedScenario(t *testing.T, gdb *gorm.DB) (p1, p2 models.Property) {
	t.Helper()

	price1 := 6000000.0
	p1 = models.Property{
		ID:           "p1",
		BrokerID:     brokerA,
		PropertyType: models.PropertyTypePlot,
		Status:       models.PropertyStatusAvailable,
		City:         "Rajkot",
		Area:         "Kalawad Road",
		SurveyNo:     "S-234",
		TotalPrice:   &price1,
	}
	require.NoError(t, gdb.Create(&p1).Error)

	bhk := 3
	price2 := 4500000.0
	p2 = models.Property{
		ID:              "p2",
		BrokerID:        brokerA,
		PropertyType:    models.PropertyTypeResidential,
		Status:          models.PropertyStatusSold,
		City:            "Rajkot",
		Area:            "X",
		BHK:             &bhk,
		FurnishedStatus: "semi-furnished",
		TotalPrice:      &price2,
	}
	require.NoError(t, gdb.Create(&p2).Error)

	require.NoError(t, gdb.Create(&models.PropertyOwner{
		ID:             "o1",
		PropertyID:     "p2",
		BrokerID:       brokerA,
		OwnerName:      "Ramesh Patel",
		PhoneNumber:    "9876543210",
		IsCurrentOwner: true,
	}).Error)

	require.NoError(t, gdb.Create(&models.Property{
		ID:           "pb",
		BrokerID:     brokerB,
		PropertyType: models.PropertyTypePlot,
		Status:       models.PropertyStatusAvailable,
		Area:         "Kalawad Road",
	}).Error)

	return p1, p2
}

func ids(results []models.Property) []string {
	out := make([]string, 0, len(results))
	for _, p := range results {
		out = append(out, p.ID)
	}
	return out
}

func TestResolveNoParamsReturnsAllForBroker(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	results, err := r.Resolve(brokerA, Params{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(results))
}

func TestResolveBrokerPartition(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	results, err := r.Resolve(brokerB, Params{Query: "Kalawad"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pb"}, ids(results))
}

func TestResolveFreeTextMatchesPropertyColumns(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	// Primary column match: the fallback must not widen the result.
	results, err := r.Resolve(brokerA, Params{Query: "Kalawad"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(results))
}

func TestResolveFreeTextCaseInsensitive(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	results, err := r.Resolve(brokerA, Params{Query: "kalawad"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(results))
}

func TestResolveOwnerFallback(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	// "Ramesh" matches no property column; the empty primary result
	// triggers the owner fallback pass, which finds P2.
	results, err := r.Resolve(brokerA, Params{Query: "Ramesh"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, ids(results))
	require.Len(t, results[0].Owners, 1)
	assert.Equal(t, "Ramesh Patel", results[0].Owners[0].OwnerName)
}

func TestResolveOwnerFallbackByPhone(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	results, err := r.Resolve(brokerA, Params{Query: "98765"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, ids(results))
}

func TestResolveFallbackSkippedWhenPrimaryNonEmpty(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	// "Rajkot" matches both properties via the city column, so the owner
	// pass never runs and the result is simply the primary set.
	results, err := r.Resolve(brokerA, Params{Query: "Rajkot"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(results))
}

func TestResolveNoMatchesReturnsEmptySlice(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	results, err := r.Resolve(brokerA, Params{Query: "zzz-no-such-term"})
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestResolveOwnerNameFilterNarrowsPrimary(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	results, err := r.Resolve(brokerA, Params{City: "Rajkot", OwnerName: "ramesh"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, ids(results))
}

func TestResolveOwnerNameFilterSuppressesFallback(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	// owner_name and q together: q must still match a property column, so
	// an owner-only term comes back empty rather than falling back.
	results, err := r.Resolve(brokerA, Params{Query: "Ramesh", OwnerName: "Ramesh"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestResolveExactFilters(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	bhk := 3
	results, err := r.Resolve(brokerA, Params{Type: "residential", Status: "sold", BHK: &bhk, Furnished: "semi-furnished"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, ids(results))

	two := 2
	results, err = r.Resolve(brokerA, Params{BHK: &two})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestResolvePriceRange(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	min := 5000000.0
	results, err := r.Resolve(brokerA, Params{MinPrice: &min})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(results))

	max := 5000000.0
	results, err = r.Resolve(brokerA, Params{MaxPrice: &max})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, ids(results))
}

func TestResolvePartialFilters(t *testing.T) {
	r, gdb := newTestResolver(t)
	seedScenario(t, gdb)

	results, err := r.Resolve(brokerA, Params{Area: "kalawad"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(results))

	results, err = r.Resolve(brokerA, Params{SurveyNo: "s-234"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(results))
}

func TestResolveOrderedByCreationDescending(t *testing.T) {
	r, gdb := newTestResolver(t)

	for _, id := range []string{"old", "mid", "new"} {
		require.NoError(t, gdb.Create(&models.Property{
			ID:           id,
			BrokerID:     brokerA,
			PropertyType: models.PropertyTypePlot,
			Status:       models.PropertyStatusAvailable,
		}).Error)
		// Distinct timestamps via explicit update; autoCreateTime stamps
		// rows created in the same instant identically.
		require.NoError(t, gdb.Exec(
			"UPDATE properties SET created_at = datetime('now', ?) WHERE id = ?",
			map[string]string{"old": "-2 hours", "mid": "-1 hours", "new": "+0 hours"}[id], id,
		).Error)
	}

	results, err := r.Resolve(brokerA, Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(results))
}
