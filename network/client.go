package network

import (
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/krool/slingsquad/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// Spectator follows a battle streamed by the spectator server. Snapshots are
// folded into a View as they arrive; the accessors read that view.
// Router callbacks run on necs goroutines, so everything sits behind mu.
type Spectator struct {
	mu sync.RWMutex

	view      *View
	snapshots int
	connected bool
	err       error
	conn      *websocket.Conn
}

func newSpectator() *Spectator {
	return &Spectator{view: NewView()}
}

// Watch dials the server at address in the background and starts following
// its battle.
func Watch(address string) *Spectator {
	s := newSpectator()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Printf("[spectator] watching %s", address)
		s.mu.Lock()
		s.connected = true
		s.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		s.receive(snapshot)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[spectator] disconnected: %v", err)
		s.mu.Lock()
		s.connected = false
		s.conn = nil
		s.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[spectator] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			s.mu.Lock()
			s.conn = conn
			s.mu.Unlock()
		})
		if err != nil {
			s.fail(fmt.Errorf("watch %s: %w", address, err))
		}
	}()
	return s
}

func (s *Spectator) receive(snapshot esync.WorldSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Apply(snapshot)
	s.snapshots++
}

func (s *Spectator) fail(err error) {
	s.mu.Lock()
	s.connected = false
	s.err = err
	s.mu.Unlock()
}

// Close drops the connection and the router handlers.
func (s *Spectator) Close() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.connected = false
	s.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
	router.ResetRouter()
}

func (s *Spectator) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Err returns the error that ended the connection, if any.
func (s *Spectator) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Snapshots counts the snapshots received so far.
func (s *Spectator) Snapshots() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots
}

// Battle returns the latest battle summary.
func (s *Spectator) Battle() netcomponents.NetBattleData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Battle
}

func (s *Spectator) Bodies() []netcomponents.NetBodyData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Bodies()
}

func (s *Spectator) Count(kind int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Count(kind)
}

// Advance interpolates the bodies towards the latest snapshot.
func (s *Spectator) Advance(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Advance(dt)
}
