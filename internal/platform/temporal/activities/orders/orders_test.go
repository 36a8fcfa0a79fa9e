package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
)

type publisherFunc func(context.Context, domain.StatusChange) error

func (f publisherFunc) Publish(ctx context.Context, change domain.StatusChange) error {
	return f(ctx, change)
}

func TestRecordStatus_Publishes(t *testing.T) {
	var got domain.StatusChange
	acts := NewActivities(publisherFunc(func(_ context.Context, change domain.StatusChange) error {
		got = change
		return nil
	}))

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()
	env.RegisterActivity(acts.RecordStatus)

	change := domain.StatusChange{OrderID: "o-1", Progress: domain.ProgressOf(domain.StatusPreparing)}
	_, err := env.ExecuteActivity(acts.RecordStatus, change)
	require.NoError(t, err)
	require.Equal(t, "o-1", got.OrderID)
	require.Equal(t, domain.StatusPreparing, got.Progress.Status)
}

func TestRecordStatus_PropagatesFailure(t *testing.T) {
	acts := NewActivities(publisherFunc(func(context.Context, domain.StatusChange) error {
		return errors.New("broker down")
	}))

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()
	env.RegisterActivity(acts.RecordStatus)

	_, err := env.ExecuteActivity(acts.RecordStatus, domain.StatusChange{OrderID: "o-1"})
	require.Error(t, err)
}
