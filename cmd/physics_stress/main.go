// Stress test comparing all-pairs vs grid broad-phase sphere resolution
package main

import (
	"fmt"
	"os"
	"time"

	"ballpit/internal/physics"
	"ballpit/internal/scene"

	"github.com/charmbracelet/log"
	"github.com/chewxy/math32"
)

const iterations = 10

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "stress"})

	testCounts := []int{100, 500, 1000, 2000}
	for _, count := range testCounts {
		if err := testBroadPhase(count); err != nil {
			logger.Fatal("stress run failed", "count", count, "err", err)
		}
	}
}

// pitFor scales the pit so density stays close to the default 150 balls.
func pitFor(count int) scene.Layout {
	l := scene.DefaultLayout()
	l.Balls = count
	l.PitRadius *= math32.Sqrt(float32(count) / 150)
	return l
}

func buildWorld(count int, mode string) (*physics.World, error) {
	cfg := physics.DefaultConfig()
	cfg.BroadPhase = mode
	return scene.BallPit(pitFor(count), 42).Build(cfg) // Consistent results
}

func timeSolve(w *physics.World) (time.Duration, int) {
	// Warm up
	w.Solve()

	start := time.Now()
	var contacts int
	for i := 0; i < iterations; i++ {
		contacts = w.Solve().Contacts
	}
	return time.Since(start) / iterations, contacts
}

func testBroadPhase(count int) error {
	all, err := buildWorld(count, physics.BroadPhaseAllPairs)
	if err != nil {
		return err
	}
	grid, err := buildWorld(count, physics.BroadPhaseGrid)
	if err != nil {
		return err
	}

	allTime, allContacts := timeSolve(all)
	gridTime, gridContacts := timeSolve(grid)

	speedup := float64(allTime) / float64(gridTime)

	fmt.Printf("%5d spheres: all-pairs %10v (%5d contacts) | grid %8v (%5d contacts) | %.1fx speedup\n",
		count, allTime.Round(time.Microsecond), allContacts,
		gridTime.Round(time.Microsecond), gridContacts, speedup)
	return nil
}
