package core

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLoopStopsAfterLinger(t *testing.T) {
	var steps, syncs atomic.Int32
	var lastDt atomic.Value
	step := func(dt float64) bool {
		lastDt.Store(dt)
		return steps.Add(1) < 3
	}
	g := NewGameLoop(step, func() error {
		syncs.Add(1)
		return nil
	}, 1000)
	g.linger = 2

	go g.Run()
	select {
	case <-g.Done():
	case <-time.After(5 * time.Second):
		g.Stop()
		t.Fatal("loop did not stop after the battle finished")
	}

	assert.Equal(t, int32(3), steps.Load(), "no steps once finished")
	assert.Equal(t, int32(5), syncs.Load(), "final state synced while lingering")
	assert.Equal(t, uint64(5), g.Ticks())
	assert.Equal(t, 1.0/1000, lastDt.Load())
}

func TestGameLoopStop(t *testing.T) {
	g := NewGameLoop(func(float64) bool { return true }, func() error {
		return errors.New("no transport")
	}, 1000)

	go g.Run()
	require.Eventually(t, func() bool { return g.Ticks() > 0 }, 5*time.Second, time.Millisecond)

	g.Stop()
	g.Stop()
	select {
	case <-g.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loop still running after Stop")
	}
}

func TestNewGameLoopDefaultsTickRate(t *testing.T) {
	g := NewGameLoop(nil, nil, 0)
	assert.Equal(t, 30, g.tickRate)
	assert.Equal(t, lingerTicks, g.linger)
}
