package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkoyuncu/itemkeeper/internal/service"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  uint64
		wantOffset uint64
		wantErr    bool
	}{
		{
			name:       "defaults when absent",
			query:      "",
			wantLimit:  defaultPageLimit,
			wantOffset: defaultPageOffset,
		},
		{
			name:       "explicit values",
			query:      "?limit=25&offset=50",
			wantLimit:  25,
			wantOffset: 50,
		},
		{
			name:       "zero limit is valid",
			query:      "?limit=0",
			wantLimit:  0,
			wantOffset: defaultPageOffset,
		},
		{
			name:       "limit above cap is clamped",
			query:      "?limit=5000",
			wantLimit:  maxPageLimit,
			wantOffset: defaultPageOffset,
		},
		{
			name:       "limit at cap passes through",
			query:      "?limit=1000",
			wantLimit:  1000,
			wantOffset: defaultPageOffset,
		},
		{
			name:    "non-numeric limit",
			query:   "?limit=abc",
			wantErr: true,
		},
		{
			name:    "negative offset",
			query:   "?offset=-5",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/items"+test.query, nil)

			limit, offset, err := parsePagination(req)

			if test.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantLimit, limit)
			assert.Equal(t, test.wantOffset, offset)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantID  int64
		wantErr bool
	}{
		{name: "positive integer", raw: "42", wantID: 42},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-7", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			routeCtx := chi.NewRouteContext()
			routeCtx.URLParams.Add("itemID", test.raw)

			req := httptest.NewRequest(http.MethodGet, "/api/items/"+test.raw, nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

			id, err := parseIDParam(req, "itemID")

			if test.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantID, id)
		})
	}
}
