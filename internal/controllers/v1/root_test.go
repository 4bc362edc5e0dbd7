package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetwise/backend/internal/controllers/v1"
	"github.com/budgetwise/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/healthz", response.Links.Healthz)
	assert.Equal(suite.T(), "http://example.com/version", response.Links.Version)
	assert.Equal(suite.T(), "http://example.com/metrics", response.Links.Metrics)
	assert.Equal(suite.T(), "http://example.com/v1", response.Links.V1)
}

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.V1Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/daily-budgets", response.Links.DailyBudgets)
	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/months", response.Links.Months)
	assert.Equal(suite.T(), "http://example.com/v1/days", response.Links.Days)
}

func (suite *TestSuiteStandard) TestGetVersion() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/version", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.VersionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "0.0.0", response.Data.Version)
}

// TestOptions verifies that the general endpoints return the correct allowed
// methods.
func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/", "GET"},
		{"http://example.com/version", "GET"},
		{"http://example.com/v1", "GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
