package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tokenRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentease_client_token_refreshes_total",
		Help: "Number of network token refresh calls issued.",
	})
	refreshFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentease_client_token_refresh_failures_total",
		Help: "Number of token refresh calls that failed and ended the session.",
	})
	refreshWaiters = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rentease_client_refresh_waiters",
		Help: "Requests currently parked waiting for an in-flight refresh.",
	})
	requestRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentease_client_request_retries_total",
		Help: "Requests replayed with a fresh access token after a 401.",
	})
)
