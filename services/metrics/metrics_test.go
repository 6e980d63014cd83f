package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/v1/colleges", "200"))
	ObserveRequest("GET", "/v1/colleges", 200, 15*time.Millisecond)
	ObserveRequest("GET", "/v1/colleges", 200, 5*time.Millisecond)
	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/v1/colleges", "200")))
}

func TestObserveSearch(t *testing.T) {
	before := testutil.ToFloat64(UnsupportedFilters.WithLabelValues("tuition"))
	ObserveSearch(3, []string{"tuition", "location"})
	assert.Equal(t, before+1, testutil.ToFloat64(UnsupportedFilters.WithLabelValues("tuition")))
}
