package train

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_MatchesSequentialRuns(t *testing.T) {
	x, labels := separable()
	initial := seeded(t, 11)
	lrs := []float64{0.01, 0.1, 0.5, 1, 2}
	before := initial.Vector()

	results, err := Sweep(context.Background(), x, labels, initial, 30, lrs, 2)
	require.NoError(t, err)
	require.Len(t, results, len(lrs))

	for i, lr := range lrs {
		p, h, err := Train(x, labels, initial, 30, lr)
		require.NoError(t, err)

		assert.Equal(t, lr, results[i].LR)
		assert.Equal(t, p.Vector(), results[i].Params.Vector(), "lr=%v", lr)
		assert.Equal(t, h.Values(), results[i].History.Values(), "lr=%v", lr)
		last, _ := h.Last()
		assert.Equal(t, last, results[i].FinalLoss())
	}
	assert.Equal(t, before, initial.Vector())
}

func TestSweep_Unlimited(t *testing.T) {
	x, labels := separable()
	results, err := Sweep(context.Background(), x, labels, seeded(t, 12), 5, []float64{0.1, 0.2}, 0)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSweep_Empty(t *testing.T) {
	x, labels := separable()
	results, err := Sweep(context.Background(), x, labels, seeded(t, 13), 5, nil, 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSweep_InvalidLR(t *testing.T) {
	x, labels := separable()
	_, err := Sweep(context.Background(), x, labels, seeded(t, 14), 5, []float64{0.1, -1}, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSweep_Canceled(t *testing.T) {
	x, labels := separable()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, x, labels, seeded(t, 15), 5, []float64{0.1, 0.2}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
