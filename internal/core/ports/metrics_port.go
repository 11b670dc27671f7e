package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	// RecordCarAction counts a lifecycle action (rent, return, buy, lease) by outcome.
	RecordCarAction(action, outcome string)
}
