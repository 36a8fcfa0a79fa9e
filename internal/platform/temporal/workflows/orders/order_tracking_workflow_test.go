package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/delish-express/internal/platform/temporal/activities/orders"
)

type recordingPublisher struct {
	mu      sync.Mutex
	changes []domain.StatusChange
}

func (p *recordingPublisher) Publish(_ context.Context, change domain.StatusChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, change)
	return nil
}

func (p *recordingPublisher) statuses() []domain.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Status, 0, len(p.changes))
	for _, c := range p.changes {
		out = append(out, c.Progress.Status)
	}
	return out
}

func newEnv(t *testing.T, pub *recordingPublisher) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterWorkflowWithOptions(OrderTrackingWorkflow, workflow.RegisterOptions{Name: OrderTrackingWorkflowName})
	env.RegisterActivityWithOptions(orderactivities.NewActivities(pub).RecordStatus, activity.RegisterOptions{Name: orderactivities.RecordStatusActivityName})
	return env
}

func TestOrderTrackingWorkflow_ReachesDeliveredAfterThreeDelays(t *testing.T) {
	pub := &recordingPublisher{}
	env := newEnv(t, pub)

	env.RegisterDelayedCallback(func() {
		value, err := env.QueryWorkflow(ProgressQuery)
		require.NoError(t, err)
		var progress domain.Progress
		require.NoError(t, value.Get(&progress))
		assert.Equal(t, domain.StatusPreparing, progress.Status)
		assert.InDelta(t, 1.0/3, progress.Fraction, 1e-9)
	}, 7*time.Second)

	env.ExecuteWorkflow(OrderTrackingWorkflowName, OrderTrackingWorkflowInput{OrderID: "o-1", StageDelay: 5 * time.Second})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var result domain.Progress
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, domain.StatusDelivered, result.Status)
	assert.Equal(t, []domain.Status{domain.StatusPreparing, domain.StatusOutForDelivery, domain.StatusDelivered}, pub.statuses())
}

func TestOrderTrackingWorkflow_CancelStopsProgression(t *testing.T) {
	pub := &recordingPublisher{}
	env := newEnv(t, pub)

	env.RegisterDelayedCallback(env.CancelWorkflow, 7*time.Second)
	env.ExecuteWorkflow(OrderTrackingWorkflowName, OrderTrackingWorkflowInput{OrderID: "o-2", StageDelay: 5 * time.Second})

	require.True(t, env.IsWorkflowCompleted())
	require.True(t, temporal.IsCanceledError(env.GetWorkflowError()))
	assert.Equal(t, []domain.Status{domain.StatusPreparing}, pub.statuses())
}
