package observability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/library-service/internal/observability"
)

func Test_Metrics_RecordRequest(t *testing.T) {
	metrics := observability.NewMetrics()

	metrics.RecordRequest("/book/loan", "POST", 200, 5*time.Millisecond)
	metrics.RecordRequest("/book/loan", "POST", 200, 7*time.Millisecond)
	metrics.RecordRequest("/book/loan", "POST", 409, time.Millisecond)

	assert.Equal(t, int64(2), metrics.RequestCount("/book/loan", "POST", 200))
	assert.Equal(t, int64(1), metrics.RequestCount("/book/loan", "POST", 409))
	assert.Equal(t, int64(0), metrics.RequestCount("/user", "GET", 200))
}

func Test_Metrics_RecordError(t *testing.T) {
	metrics := observability.NewMetrics()

	metrics.RecordError("/book/loan", "POST", "CONFLICT")

	assert.Equal(t, int64(1), metrics.ErrorCount("/book/loan", "POST", "CONFLICT"))
	assert.Equal(t, int64(0), metrics.ErrorCount("/book/loan", "POST", "NOT_FOUND"))
}

func Test_Metrics_NilReceiverIsSafe(t *testing.T) {
	var metrics *observability.Metrics

	metrics.RecordRequest("/", "GET", 200, 0)
	metrics.RecordError("/", "GET", "INTERNAL_ERROR")

	assert.Equal(t, int64(0), metrics.RequestCount("/", "GET", 200))
	assert.Equal(t, int64(0), metrics.ErrorCount("/", "GET", "INTERNAL_ERROR"))
}
