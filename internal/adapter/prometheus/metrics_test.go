package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusAdapter(reg)

	router := gin.New()
	router.GET("/cars/:id", func(c *gin.Context) {
		defer metrics.RecordMetrics(c, time.Now())
		c.Status(http.StatusNoContent)
	})
	for _, id := range []string{"1", "2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cars/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/cars/:id", "204")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
}

func TestRecordCarAction(t *testing.T) {
	metrics := NewPrometheusAdapter(prometheus.NewRegistry())

	metrics.RecordCarAction("rent", "success")
	metrics.RecordCarAction("rent", "rejected")
	metrics.RecordCarAction("rent", "success")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.carActions.WithLabelValues("rent", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.carActions.WithLabelValues("rent", "rejected")))
}
