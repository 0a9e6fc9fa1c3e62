//go:build unit
// +build unit

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	success := OperationsCounter().WithLabelValues("AES", OperationEncrypt, ResultSuccess)
	failure := OperationsCounter().WithLabelValues("AES", OperationDecrypt, ResultFailure)

	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)

	ObserveOperation("AES", OperationEncrypt, time.Now(), nil)
	ObserveOperation("AES", OperationDecrypt, time.Now(), errors.New("bad key"))

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+1, testutil.ToFloat64(failure))
}

func TestSessionsCounter(t *testing.T) {
	before := testutil.ToFloat64(SessionsCounter())
	SessionsCounter().Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SessionsCounter()))
}

func TestEnsureRegistered_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		ensureRegistered()
		ensureRegistered()
	})
}
