package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"

	"leadflow-crm/internal/entities"
)

func TestBuildLeadQueryDefaults(t *testing.T) {
	q := buildLeadQuery(entities.LeadFilter{})

	require.Empty(t, q.where)
	require.Empty(t, q.args)
	require.Equal(t, "ORDER BY created_at DESC, id ASC", q.orderBy)
	require.Equal(t, 20, q.limit)
	require.Equal(t, 0, q.offset)
}

func TestBuildLeadQueryStatusAllMeansNoFilter(t *testing.T) {
	q := buildLeadQuery(entities.LeadFilter{Status: "all"})

	require.Empty(t, q.where)
	require.Empty(t, q.args)
}

func TestBuildLeadQueryStatusAndSource(t *testing.T) {
	q := buildLeadQuery(entities.LeadFilter{
		Status: entities.StatusConverted,
		Source: entities.SourceReferral,
	})

	require.Equal(t, "WHERE status = $1 AND source = $2", q.where)
	require.Equal(t, []any{"converted", "Referral"}, q.args)
}

func TestBuildLeadQuerySearch(t *testing.T) {
	q := buildLeadQuery(entities.LeadFilter{Search: "acme"})

	require.Equal(t, "WHERE (name ILIKE $1 OR email ILIKE $1 OR company ILIKE $1)", q.where)
	require.Equal(t, []any{"%acme%"}, q.args)
}

func TestBuildLeadQuerySearchEscapesLikeMetacharacters(t *testing.T) {
	q := buildLeadQuery(entities.LeadFilter{Search: `50%_off\deal`})

	require.Equal(t, []any{`%50\%\_off\\deal%`}, q.args)
}

func TestBuildLeadQuerySortOrders(t *testing.T) {
	tests := []struct {
		sort     string
		expected string
	}{
		{entities.SortNewest, "ORDER BY created_at DESC, id ASC"},
		{entities.SortOldest, "ORDER BY created_at ASC, id ASC"},
		{entities.SortName, "ORDER BY name ASC, id ASC"},
		{"bogus", "ORDER BY created_at DESC, id ASC"},
		{"", "ORDER BY created_at DESC, id ASC"},
	}

	for _, tt := range tests {
		q := buildLeadQuery(entities.LeadFilter{Sort: tt.sort})
		require.Equal(t, tt.expected, q.orderBy, "sort=%q", tt.sort)
	}
}

func TestBuildLeadQueryPagination(t *testing.T) {
	q := buildLeadQuery(entities.LeadFilter{Page: 3, Limit: 25})

	require.Equal(t, 25, q.limit)
	require.Equal(t, 50, q.offset)
}

func TestBuildLeadQueryFloorsPageAndLimit(t *testing.T) {
	q := buildLeadQuery(entities.LeadFilter{Page: -2, Limit: 0})

	require.Equal(t, 20, q.limit)
	require.Equal(t, 0, q.offset)
}

func TestBuildLeadQueryDeterministic(t *testing.T) {
	f := entities.LeadFilter{
		Status: entities.StatusNew,
		Search: "jane",
		Sort:   entities.SortName,
		Page:   2,
		Limit:  5,
	}

	require.Equal(t, buildLeadQuery(f), buildLeadQuery(f))
}
