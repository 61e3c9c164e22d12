package executor_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/greenthread-go/greenthread"
	"github.com/greenthread-go/greenthread/internal/executor"
)

func TestRunConcurrentDrivesEachExecutorIndependently(t *testing.T) {
	e1 := executor.New(zerolog.Nop())
	e1.Spawn(futureTask[int]{greenthread.New(func() int { return 1 })})

	e2 := executor.New(zerolog.Nop())
	e2.Spawn(futureTask[int]{greenthread.New(func() int { return 2 })})

	results, err := executor.RunConcurrent(context.Background(), e1, e2)
	require.NoError(t, err)
	require.Equal(t, 1, results[0][0])
	require.Equal(t, 2, results[1][0])
}
