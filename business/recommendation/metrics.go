package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK         = "ok"
	outcomeIncomplete = "incomplete"
	outcomeInvalid    = "invalid"
	outcomeError      = "error"
)

var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "incoterm_recommend_requests_total",
			Help: "Count of recommendation requests by outcome.",
		},
		[]string{"outcome"},
	)

	TopRecommendationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "incoterm_top_recommendation_total",
			Help: "Count of times each incoterm was ranked first.",
		},
		[]string{"code"},
	)
)

func init() {
	prometheus.MustRegister(RecommendRequestsTotal, TopRecommendationTotal)
}
