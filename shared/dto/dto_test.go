package dto_test

import (
	"corais/shared/constant"
	"corais/shared/dto"
	"corais/shared/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt})

	parsed, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(createdAt))
	assert.Empty(t, metadata.ModifiedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when empty",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults when disabled",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back",
			query:          "page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms/accommodations?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Restrict(t *testing.T) {
	params := dto.QueryParams{SortBy: "name; DROP TABLE rooms"}
	params.Restrict("price_per_night", "price_per_night", "name")

	assert.Equal(t, "price_per_night", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.QueryParams{SortBy: "name", SortDir: dto.SortDirDesc}
	params.Restrict("price_per_night", "price_per_night", "name")

	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq, Table: "rooms"},
			dto.Filter{Field: "max_guests", Value: 2, Operator: dto.FilterOperatorGreaterEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
					dto.Filter{Field: "name", Value: "x", Operator: "unknown"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.status = :status AND max_guests >= :max_guests AND (id IN (:id_0, :id_1)))", where)
	assert.Equal(t, map[string]any{"status": "available", "max_guests": 2, "id_0": "a", "id_1": "b"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
