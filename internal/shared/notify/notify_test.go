package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_DrainEmpties(t *testing.T) {
	var q Queue
	ctx := context.Background()
	Fanout{&q, Discard{}, nil}.Notify(ctx, Notice{Level: LevelSuccess, Title: "one"})
	q.Notify(ctx, Notice{Level: LevelInfo, Title: "two"})

	got := q.Drain()
	require.Len(t, got, 2)
	require.Equal(t, "one", got[0].Title)
	require.Empty(t, q.Drain())
}
