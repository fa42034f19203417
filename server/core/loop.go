package core

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// lingerTicks is how long the loop keeps syncing a finished battle so late
// spectators still receive the outcome.
const lingerTicks = 90

// GameLoop drives a battle at a fixed tick rate. Every tick steps the battle
// by a fixed dt and then syncs the network world. Once step reports the
// battle over, the loop syncs for lingerTicks more and stops by itself.
type GameLoop struct {
	step     func(dt float64) bool
	sync     func() error
	tickRate int
	linger   int

	ticks    atomic.Uint64
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

func NewGameLoop(step func(dt float64) bool, syncFn func() error, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &GameLoop{
		step:     step,
		sync:     syncFn,
		tickRate: tickRate,
		linger:   lingerTicks,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()
	defer close(g.done)

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	dt := 1 / float64(g.tickRate)
	remaining := -1
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
		}

		g.ticks.Add(1)
		if remaining < 0 && !g.step(dt) {
			remaining = g.linger
		}
		if err := g.sync(); err != nil {
			log.Printf("Sync error: %v", err)
		}

		if remaining == 0 {
			log.Printf("Game loop finished after %d ticks", g.ticks.Load())
			return
		}
		if remaining > 0 {
			remaining--
		}
	}
}

// Stop ends the loop early. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Ticks returns the number of loop ticks run so far.
func (g *GameLoop) Ticks() uint64 {
	return g.ticks.Load()
}

// Done is closed once Run returns.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}
