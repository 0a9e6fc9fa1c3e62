// Package metrics exposes prometheus collectors for cipher operations.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Label values
const (
	OperationEncrypt = "encrypt"
	OperationDecrypt = "decrypt"
	OperationHash    = "hash"
	OperationExample = "example"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	registerOnce     sync.Once
	cipherOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cipher_lab",
			Subsystem: "cipher",
			Name:      "operations_total",
			Help:      "Count of cipher operations classified by algorithm, operation and result",
		},
		[]string{"algorithm", "operation", "result"},
	)

	cipherSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cipher_lab",
			Subsystem: "cipher",
			Name:      "duration_seconds",
			Help:      "Time spent in cipher operations",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"algorithm", "operation"},
	)

	sessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cipher_lab",
			Subsystem: "sessions",
			Name:      "created_total",
			Help:      "Count of created analysis sessions",
		},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(cipherOperations, cipherSeconds, sessionsCreated)
	})
}

// OperationsCounter returns the cipher operation counter
func OperationsCounter() *prometheus.CounterVec {
	ensureRegistered()
	return cipherOperations
}

// DurationObserver returns the duration histogram for algorithm and operation
func DurationObserver(algorithm, operation string) prometheus.Observer {
	ensureRegistered()
	return cipherSeconds.WithLabelValues(algorithm, operation)
}

// SessionsCounter returns the created sessions counter
func SessionsCounter() prometheus.Counter {
	ensureRegistered()
	return sessionsCreated
}

// ObserveOperation records the outcome and duration of one cipher operation started at start.
func ObserveOperation(algorithm, operation string, start time.Time, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	OperationsCounter().WithLabelValues(algorithm, operation, result).Inc()
	DurationObserver(algorithm, operation).Observe(time.Since(start).Seconds())
}
