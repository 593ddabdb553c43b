package asteroids

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

func TestNoSpawnsAtTimeZero(t *testing.T) {
	s := newTestSim(t)
	for i := 0; i < 500; i++ {
		s.spawnWave()
	}
	if n, _ := s.store.Counts(); n != 0 {
		t.Errorf("spawned %d asteroids with a time factor of 1, expected 0", n)
	}
}

func TestSpawnEntryPoints(t *testing.T) {
	s := newTestSim(t) // half extents 500
	s.elapsed = 600
	tf := s.cfg.Spawn.TimeFactor(s.elapsed)
	const half = 500

	seen := map[SizeClass]int{}
	edges := map[Edge]int{}
	total := 0

	for wave := 0; wave < 300; wave++ {
		s.spawnWave()
		for _, a := range s.store.Asteroids() {
			total++
			seen[a.Size]++
			params := a.Size.Params(s.cfg.Sizes)
			r := params.MaxRadius
			p, v := a.Transform.Position, a.Velocity

			switch {
			case p.Y() == half+r:
				edges[EdgeTop]++
				if v.Y() >= 0 || p.X() < -half || p.X() > half {
					t.Errorf("top spawn at %v moving %v", p, v)
				}
			case p.X() == half+r:
				edges[EdgeRight]++
				if v.X() >= 0 || p.Y() < -half || p.Y() > half {
					t.Errorf("right spawn at %v moving %v", p, v)
				}
			case p.Y() == -half-r:
				edges[EdgeBottom]++
				if v.Y() <= 0 {
					t.Errorf("bottom spawn at %v moving %v", p, v)
				}
			case p.X() == -half-r:
				edges[EdgeLeft]++
				if v.X() <= 0 {
					t.Errorf("left spawn at %v moving %v", p, v)
				}
			default:
				t.Errorf("spawn at %v is not on an edge offset by %f", p, r)
			}

			expectedSpeed := params.Speed * tf
			if got := v.Len(); math32.Abs(got-expectedSpeed) > expectedSpeed*1e-3 {
				t.Errorf("%s speed = %f, expected %f", a.Size, got, expectedSpeed)
			}
			if outside(p, r, half, half) {
				t.Errorf("fresh spawn at %v would be culled immediately", p)
			}
			if len(a.Polygon) != params.Vertices+1 {
				t.Errorf("%s polygon has %d points, expected %d", a.Size, len(a.Polygon), params.Vertices+1)
			}
			s.store.Remove(a.ID)
		}
	}

	if total == 0 {
		t.Fatal("no asteroids spawned at elapsed 600")
	}
	for _, size := range []SizeClass{Small, Medium, Large} {
		if seen[size] == 0 {
			t.Errorf("no %s asteroids among %d spawns", size, total)
		}
	}
	for _, e := range []Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft} {
		if edges[e] == 0 {
			t.Errorf("edge %d never used among %d spawns", e, total)
		}
	}
}

func TestSpawnRateGrows(t *testing.T) {
	count := func(elapsed float32) int {
		s := newTestSim(t)
		s.elapsed = elapsed
		for i := 0; i < 400; i++ {
			s.spawnWave()
		}
		n, _ := s.store.Counts()
		return n
	}

	early, late := count(20), count(600)
	if late <= early {
		t.Errorf("spawns at 600s = %d, expected more than at 20s (%d)", late, early)
	}
}

func TestPickSize(t *testing.T) {
	s := newTestSim(t)
	tests := []struct {
		roll     float32
		expected SizeClass
	}{
		{0, Small},
		{1.49, Small},
		{1.5, Medium},
		{2.49, Medium},
		{2.5, Large},
		{4, Large},
	}
	for _, tc := range tests {
		if got := s.pickSize(tc.roll); got != tc.expected {
			t.Errorf("pickSize(%f) = %s, expected %s", tc.roll, got, tc.expected)
		}
	}
}

type trace struct {
	score, asteroids, health int
	alive                    bool
	events                   int
}

// autopilot spins and fires, thrusting in bursts.
func autopilot(step int, dt float32) Input {
	return Input{
		Dt:     dt,
		Left:   true,
		Thrust: (step/120)%2 == 0,
		Fire:   step%15 == 0,
	}
}

func runTrace(t *testing.T, seed int64, steps int) ([]trace, []AsteroidView) {
	t.Helper()
	s := New(config.DefaultAsteroidsConfig(), seed)
	s.SetViewport(400, 300)
	out := make([]trace, 0, steps)
	for i := 0; i < steps; i++ {
		res := mustStep(t, s, autopilot(i, 1.0/60))
		out = append(out, trace{res.Score, res.Asteroids, res.Health, res.ShipAlive, len(res.Events)})
	}
	return out, s.store.Asteroids()
}

func TestDeterministicForSeed(t *testing.T) {
	a, rocksA := runTrace(t, 7, 3000)
	b, rocksB := runTrace(t, 7, 3000)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
	if len(rocksA) != len(rocksB) {
		t.Fatalf("final asteroid counts differ: %d vs %d", len(rocksA), len(rocksB))
	}
	for i := range rocksA {
		if rocksA[i].Transform != rocksB[i].Transform || rocksA[i].Size != rocksB[i].Size {
			t.Errorf("asteroid %d differs: %+v vs %+v", i, rocksA[i].Transform, rocksB[i].Transform)
		}
	}
}

func TestLongRunScoreAndHealth(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		s := New(config.DefaultAsteroidsConfig(), seed)
		s.SetViewport(400, 300)

		prevScore := 0
		for i := 0; i < 6000; i++ {
			res := mustStep(t, s, autopilot(i, 1.0/60))

			gained := 0
			for _, e := range res.Events {
				if se, ok := e.(ScoreEvent); ok {
					gained += se.Amount
				}
			}
			if res.Score < prevScore {
				t.Fatalf("seed %d step %d: score fell from %d to %d", seed, i, prevScore, res.Score)
			}
			if res.Score-prevScore != gained {
				t.Fatalf("seed %d step %d: score rose by %d but events carry %d", seed, i, res.Score-prevScore, gained)
			}
			if destroyed := countEvents[AsteroidDestroyedEvent](res.Events); destroyed != gained {
				t.Fatalf("seed %d step %d: %d destructions for %d points", seed, i, destroyed, gained)
			}
			if res.Health < 0 || res.Health > 100 {
				t.Fatalf("seed %d step %d: health %d out of range", seed, i, res.Health)
			}
			if !res.ShipAlive && res.Health != 0 {
				t.Fatalf("seed %d step %d: dead ship reports health %d", seed, i, res.Health)
			}
			prevScore = res.Score
		}
	}
}
