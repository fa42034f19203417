package core

import (
	"log"
	"sync"

	"github.com/krool/slingsquad/battle"
	"github.com/krool/slingsquad/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server runs one battle and streams it to spectators
type Server struct {
	battle *battle.Battle
	pilot  *battle.Autopilot

	world     donburi.World // network world, holds only net components
	mirror    *mirror
	loop      *GameLoop
	transport *transports.WsServerTransport

	finished bool

	spectators map[*router.NetworkClient]struct{}
	mu         sync.RWMutex
}

// NewServer creates a spectator server for b. A nil pilot leaves launches to
// the caller.
func NewServer(b *battle.Battle, pilot *battle.Autopilot, tickRate int) *Server {
	world := donburi.NewWorld()

	s := &Server{
		battle:     b,
		pilot:      pilot,
		world:      world,
		mirror:     newMirror(world, true),
		spectators: make(map[*router.NetworkClient]struct{}),
	}
	s.loop = NewGameLoop(s.Step, srvsync.DoSync, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop shuts the game loop down
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.spectators[client] = struct{}{}
	s.mu.Unlock()

	log.Printf("Spectator connected: %s", client.Id())
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Spectator %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Spectator %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.spectators, client)
	s.mu.Unlock()
}

// Step advances the battle by dt and refreshes the network world. It reports
// whether the battle is still ongoing.
func (s *Server) Step(dt float64) bool {
	if s.pilot != nil && !s.finished {
		s.pilot.Step(s.battle)
	}
	if !s.finished {
		s.battle.Update(dt)
	}

	outcome := s.battle.Outcome()
	s.mirror.update(s.battle.World(), s.battleState(outcome))

	if outcome != battle.Ongoing && !s.finished {
		s.finished = true
		log.Printf("[battle %s] finished: %s after %d ticks", s.battle.ID(), outcome, s.battle.Tick())
		if err := s.battle.SaveReport(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	return !s.finished
}

func (s *Server) battleState(outcome battle.Outcome) netcomponents.NetBattleData {
	heroes, enemies := s.battle.Alive()
	return netcomponents.NetBattleData{
		Tick:         s.battle.Tick(),
		Elapsed:      s.battle.Elapsed(),
		HeroesAlive:  heroes,
		EnemiesAlive: enemies,
		InFlight:     s.battle.HeroesInFlight(),
		AllLaunched:  s.battle.AllLaunched(),
		Outcome:      outcome.String(),
	}
}

// World returns the network world
func (s *Server) World() donburi.World {
	return s.world
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}

// Done is closed when the game loop stops, either through Stop or shortly
// after the battle finished.
func (s *Server) Done() <-chan struct{} {
	return s.loop.Done()
}
