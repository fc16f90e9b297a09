package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSideEffect(t *testing.T) {
	okBefore := testutil.ToFloat64(SideEffectsTotal.WithLabelValues("print", "ok"))
	errBefore := testutil.ToFloat64(SideEffectsTotal.WithLabelValues("print", "error"))

	ObserveSideEffect("print", nil)
	ObserveSideEffect("print", errors.New("printer offline"))
	ObserveSideEffect("print", nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(SideEffectsTotal.WithLabelValues("print", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(SideEffectsTotal.WithLabelValues("print", "error")))
}

func TestObserveRequest(t *testing.T) {
	ObserveRequest("GET", "/zones", 200, 0)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}
