package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/krool/slingsquad/assets"
	"github.com/krool/slingsquad/battle"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/network"
	"github.com/krool/slingsquad/server/core"
	"github.com/krool/slingsquad/shared/leveldata"
	"github.com/krool/slingsquad/shared/netcomponents"
	"github.com/krool/slingsquad/shared/protocol"
	"github.com/krool/slingsquad/systems"
)

const appName = "slingsquad"

func main() {
	sceneName := flag.String("scene", "skirmish", "Embedded scene to play ("+strings.Join(assets.SceneNames(), ", ")+")")
	modsPath := flag.String("mods", "", "ModifierSet YAML file (empty = read the persistence store)")
	seed := flag.Int64("seed", 1, "Random seed for crit rolls")
	angle := flag.Float64("angle", -45, "Launch angle in degrees (negative is up)")
	power := flag.Float64("power", 0.6, "Launch power in [0,1]")
	fps := flag.Int("fps", 60, "Simulation frames per second")
	duration := flag.Duration("duration", 2*time.Minute, "Max simulated battle time")
	port := flag.Uint("serve", 0, "Serve spectators on this port instead of running headless")
	tickRate := flag.Int("tickrate", 30, "Spectator server tick rate (updates per second)")
	report := flag.Bool("report", false, "Save the battle report to the persistence store")
	verbose := flag.Bool("v", false, "Log combat events")
	watch := flag.String("watch", "", "Watch a spectator server at host:port")
	flag.Parse()

	if *watch != "" {
		if err := protocol.RegisterComponents(); err != nil {
			log.Fatalf("Failed to register components: %v", err)
		}
		runWatcher(*watch)
		return
	}

	if err := systems.InitPersistence(appName); err != nil {
		log.Printf("Warning: running without persistence: %v", err)
	}

	mods, err := loadModifiers(*modsPath)
	if err != nil {
		log.Fatalf("Failed to load modifiers: %v", err)
	}

	scene, err := leveldata.LoadScene(assets.Scenes(), assets.ScenePath(*sceneName))
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	b, err := battle.New(mods, battle.WithSeed(*seed), battle.WithBuiltinPhysics())
	if err != nil {
		log.Fatalf("Failed to create battle: %v", err)
	}
	if err := b.LoadScene(scene); err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *verbose {
		logEvents(b)
	}

	pilot := &battle.Autopilot{Aim: systems.LaunchAim{
		Angle: *angle * math.Pi / 180,
		Power: *power,
	}}

	if *port != 0 {
		serve(b, pilot, *port, *tickRate)
		return
	}

	outcome := runHeadless(b, pilot, *fps, *duration)
	r := b.Report()
	log.Printf("[battle %s] %s after %d ticks (%.1fs): %d enemies killed, %d heroes lost, %d blocks destroyed, %d barrels exploded",
		b.ID(), outcome, r.Ticks, r.Elapsed, r.EnemiesKilled, r.HeroesLost, r.BlocksDestroyed, r.BarrelsExploded)

	if *report {
		if err := b.SaveReport(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func loadModifiers(path string) (cfg.ModifierSet, error) {
	if path == "" {
		return systems.LoadModifierSet()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg.ModifierSet{}, fmt.Errorf("read %s: %w", path, err)
	}
	mods, err := cfg.ParseModifierSet(data)
	if err != nil {
		return cfg.ModifierSet{}, err
	}
	if err := systems.SaveModifierSet(mods); err != nil {
		log.Printf("Warning: modifiers not stored: %v", err)
	}
	return mods, nil
}

// runHeadless steps the battle with a fixed frame time until it ends.
func runHeadless(b *battle.Battle, pilot *battle.Autopilot, fps int, limit time.Duration) battle.Outcome {
	if fps <= 0 {
		fps = 60
	}
	dt := 1 / float64(fps)
	for b.Elapsed() < limit.Seconds() {
		pilot.Step(b)
		b.Update(dt)
		if outcome := b.Outcome(); outcome != battle.Ongoing {
			return outcome
		}
	}
	return battle.Ongoing
}

func serve(b *battle.Battle, pilot *battle.Autopilot, port uint, tickRate int) {
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server := core.NewServer(b, pilot, tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()
	go func() {
		<-server.Done()
		log.Println("Battle over, shutting down server")
		os.Exit(0)
	}()

	log.Printf("Serving battle %s on port %d (tick rate: %d/s)", b.ID(), port, tickRate)
	if err := server.Start(port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func runWatcher(address string) {
	spectator := network.Watch(address)
	defer spectator.Close()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	seen := 0
	for range ticker.C {
		if err := spectator.Err(); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
		n := spectator.Snapshots()
		if n == seen {
			continue
		}
		seen = n
		state := spectator.Battle()
		log.Printf("tick %d: %d heroes, %d enemies, %d blocks, %d barrels in view (%s)",
			state.Tick,
			spectator.Count(netcomponents.KindHero), spectator.Count(netcomponents.KindEnemy),
			spectator.Count(netcomponents.KindBlock), spectator.Count(netcomponents.KindBarrel),
			state.Outcome)
		if state.Outcome != "" && state.Outcome != battle.Ongoing.String() {
			return
		}
	}
}

func logEvents(b *battle.Battle) {
	b.OnLaunch(func(ev events.Launched) {
		log.Printf("launch #%d %s (%.0f, %.0f)", ev.QueueIndex, ev.Class, ev.VelX, ev.VelY)
	})
	b.OnDeath(func(ev events.EntityDied) {
		log.Printf("%s died at (%.0f, %.0f)", ev.Class, ev.X, ev.Y)
	})
	b.OnExplosion(func(ev events.Explosion) {
		log.Printf("explosion at (%.0f, %.0f) r=%.0f", ev.X, ev.Y, ev.Radius)
	})
	b.OnDestroyed(func(ev events.Destroyed) {
		log.Printf("destroyed at (%.0f, %.0f)", ev.X, ev.Y)
	})
}
