package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eligibilityChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_approval_eligibility_checks_total",
			Help: "Total number of loan eligibility evaluations, by outcome.",
		},
		[]string{"outcome"},
	)

	creditScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "credit_approval_credit_score",
			Help:    "Distribution of computed credit scores.",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	loansCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_approval_loans_created_total",
			Help: "Total number of loans successfully created.",
		},
	)

	customersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_approval_customers_registered_total",
			Help: "Total number of customers successfully registered.",
		},
	)

	eligibilityCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_approval_eligibility_cache_requests_total",
			Help: "Eligibility cache lookups, by result (hit/miss).",
		},
		[]string{"result"},
	)
)

func RecordEvaluation(outcome string, creditScore int) {
	eligibilityChecksTotal.WithLabelValues(outcome).Inc()
	creditScoreDistribution.Observe(float64(creditScore))
}

func RecordLoanCreated() {
	loansCreatedTotal.Inc()
}

func RecordCustomerRegistered() {
	customersRegisteredTotal.Inc()
}

func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	eligibilityCacheHitsTotal.WithLabelValues(result).Inc()
}
