package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"arbitrack/internal/metrics"
)

// operationalPaths are probe and scrape endpoints kept out of the request
// histogram and counter. Health probes additionally drive a 0/1 gauge; the
// scrape endpoint has no gauge of its own.
var operationalPaths = map[string]prometheus.Gauge{
	"/metrics": nil,
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records per-route request counts and
// latency. Operational endpoints are tracked only through their health
// gauges so scrape traffic never pollutes the API series.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if gauge, operational := operationalPaths[path]; operational {
				err := next(c)
				if gauge != nil {
					setUpDown(gauge, c.Response().Status)
				}
				return err
			}

			start := time.Now()
			err := next(c)

			labels := []string{
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
			}
			metrics.HTTPRequestDuration.
				WithLabelValues(labels...).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(labels...).
				Inc()

			return err
		}
	}
}

// setUpDown records probe success as 1 and anything else as 0.
func setUpDown(gauge prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
