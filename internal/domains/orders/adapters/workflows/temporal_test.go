package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/mocks"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/delish-express/internal/platform/temporal/workflows/orders"
)

type jsonValue struct {
	payload []byte
}

func (v jsonValue) HasValue() bool { return len(v.payload) > 0 }

func (v jsonValue) Get(valuePtr interface{}) error {
	return json.Unmarshal(v.payload, valuePtr)
}

func TestTemporalTracker_StartExecutesTrackingWorkflow(t *testing.T) {
	c := &mocks.Client{}
	defer c.AssertExpectations(t)

	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, orderworkflows.OrderTrackingWorkflowName, mock.MatchedBy(func(in orderworkflows.OrderTrackingWorkflowInput) bool {
		return in.OrderID == "o-1" && in.StageDelay == 5*time.Second
	})).Return(&mocks.WorkflowRun{}, nil).Once()

	tracker := NewTemporalTracker(c, 5*time.Second)
	progress, err := tracker.Start(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOrderPlaced, progress.Status)
}

func TestTemporalTracker_ProgressQueriesWorkflow(t *testing.T) {
	c := &mocks.Client{}
	defer c.AssertExpectations(t)

	payload, err := json.Marshal(domain.ProgressOf(domain.StatusOutForDelivery))
	require.NoError(t, err)
	c.On("QueryWorkflow", mock.Anything, TrackingWorkflowID("o-1"), "", orderworkflows.ProgressQuery).
		Return(jsonValue{payload: payload}, nil).Once()

	progress, err := NewTemporalTracker(c, time.Second).Progress(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOutForDelivery, progress.Status)
	assert.Equal(t, 2, progress.Index)
}

func TestTemporalTracker_UnknownWorkflowIsNotTracked(t *testing.T) {
	c := &mocks.Client{}
	defer c.AssertExpectations(t)

	c.On("QueryWorkflow", mock.Anything, TrackingWorkflowID("ghost"), "", orderworkflows.ProgressQuery).
		Return(nil, serviceerror.NewNotFound("workflow not found")).Once()
	c.On("CancelWorkflow", mock.Anything, TrackingWorkflowID("ghost"), "").
		Return(serviceerror.NewNotFound("workflow not found")).Once()

	tracker := NewTemporalTracker(c, time.Second)
	_, err := tracker.Progress(context.Background(), "ghost")
	assert.ErrorIs(t, err, ports.ErrNotTracked)
	assert.ErrorIs(t, tracker.Stop(context.Background(), "ghost"), ports.ErrNotTracked)
}

func TestTemporalTracker_StartFailure(t *testing.T) {
	c := &mocks.Client{}
	defer c.AssertExpectations(t)
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, orderworkflows.OrderTrackingWorkflowName, mock.Anything).
		Return(nil, errors.New("frontend unavailable")).Once()

	_, err := NewTemporalTracker(c, time.Second).Start(context.Background(), "o-1")
	assert.Error(t, err)
}
