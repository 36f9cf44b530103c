package scene

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
)

// Layout parameterizes the ball pit world.
type Layout struct {
	PlayerPos  [3]float32
	PlayerHalf [3]float32

	Boulders       int
	BoulderHalf    float32
	BoulderRing    float32 // ring radius around the player
	BoulderMinLift float32 // y offset range added to BoulderHalf
	BoulderMaxLift float32

	PitCenter     [3]float32
	PitRadius     float32
	PitHeight     float32
	Balls         int
	BallRadius    float32
	BallMass      float32
	WallThickness float32 // wall half thickness
	WallInset     float32
}

func DefaultLayout() Layout {
	return Layout{
		PlayerPos:  [3]float32{0, 2, 0},
		PlayerHalf: [3]float32{0.5, 1, 0.5},

		Boulders:       32,
		BoulderHalf:    5.2,
		BoulderRing:    30,
		BoulderMinLift: -2.6,
		BoulderMaxLift: 1.04,

		PitCenter:     [3]float32{0, 0.5, -10},
		PitRadius:     4,
		PitHeight:     1.4,
		Balls:         150,
		BallRadius:    0.3,
		BallMass:      1,
		WallThickness: 0.3,
		WallInset:     0.2,
	}
}

// DefaultBallPit builds the default layout. The same seed always gives the
// same scene.
func DefaultBallPit(seed int64) *File {
	return BallPit(DefaultLayout(), seed)
}

// BallPit lays out a player, a ring of boulders, and a walled pit of balls.
// One ball is picked as the golden ball.
func BallPit(l Layout, seed int64) *File {
	rng := rand.New(rand.NewSource(seed))
	frand := func(lo, hi float32) float32 {
		return lo + rng.Float32()*(hi-lo)
	}

	f := &File{
		Player: &BoxDef{Name: "player", Position: l.PlayerPos, HalfExtents: l.PlayerHalf},
	}

	for i := 0; i < l.Boulders; i++ {
		t := float32(i) / float32(l.Boulders) * 2 * math32.Pi
		f.Obstacles = append(f.Obstacles, BoxDef{
			Name: fmt.Sprintf("boulder-%d", i),
			Position: [3]float32{
				l.PlayerPos[0] + math32.Cos(t)*l.BoulderRing,
				l.BoulderHalf + frand(l.BoulderMinLift, l.BoulderMaxLift),
				l.PlayerPos[2] + math32.Sin(t)*l.BoulderRing,
			},
			HalfExtents: [3]float32{l.BoulderHalf, l.BoulderHalf, l.BoulderHalf},
		})
	}

	c := l.PitCenter
	for i := 0; i < l.Balls; i++ {
		ang := frand(0, 2*math32.Pi)
		// sqrt keeps the disc density uniform
		r := math32.Sqrt(frand(0, 1)) * l.PitRadius
		f.Spheres = append(f.Spheres, SphereDef{
			Position: [3]float32{
				c[0] + math32.Cos(ang)*r,
				c[1] + frand(0, l.PitHeight),
				c[2] + math32.Sin(ang)*r,
			},
			Radius: l.BallRadius,
			Mass:   l.BallMass,
		})
	}

	f.Container = pitWalls(l)

	if l.Balls > 0 {
		golden := rng.Intn(l.Balls)
		f.GoldenBall = &golden
	}
	return f
}

// pitWalls returns the four walls around the pit, standing on the ground:
// +Z, -Z, +X, -X.
func pitWalls(l Layout) []BoxDef {
	c := l.PitCenter
	r := l.PitRadius - l.WallInset
	hh := l.PitHeight / 2
	th := l.WallThickness

	return []BoxDef{
		{Name: "wall+z", Position: [3]float32{c[0], hh, c[2] + r}, HalfExtents: [3]float32{r, hh, th}},
		{Name: "wall-z", Position: [3]float32{c[0], hh, c[2] - r}, HalfExtents: [3]float32{r, hh, th}},
		{Name: "wall+x", Position: [3]float32{c[0] + r, hh, c[2]}, HalfExtents: [3]float32{th, hh, r}},
		{Name: "wall-x", Position: [3]float32{c[0] - r, hh, c[2]}, HalfExtents: [3]float32{th, hh, r}},
	}
}
