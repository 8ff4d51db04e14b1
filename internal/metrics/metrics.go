package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewUpstreamRequestsTotal returns a Prometheus counter for outbound RapidShyp calls,
// labeled by outcome (ok, client_error, server_error)
func NewUpstreamRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rapidshyp_upstream_requests_total",
		Help: "Total number of outbound RapidShyp serviceability calls by outcome",
	}, []string{"outcome"})
}
