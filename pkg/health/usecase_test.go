package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "extraction-api"})

	report, err := svc.Ready(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Report{"postgres": "ok", "extraction-api": "ok"}, report)
}

func TestReadyReportsEveryFailure(t *testing.T) {
	svc := NewService(
		stubChecker{name: "postgres", err: errors.New("connection refused")},
		stubChecker{name: "extraction-api", err: errors.New("timeout")},
	)

	report, err := svc.Ready(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
	assert.Equal(t, "connection refused", report["postgres"])
	assert.Equal(t, "timeout", report["extraction-api"])
}

func TestReadyPartialFailure(t *testing.T) {
	svc := NewService(
		stubChecker{name: "postgres"},
		stubChecker{name: "extraction-api", err: errors.New("unreachable")},
	)

	report, err := svc.Ready(context.Background())

	require.Error(t, err)
	assert.Equal(t, "ok", report["postgres"])
	assert.Equal(t, "unreachable", report["extraction-api"])
}
