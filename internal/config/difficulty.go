package config

import "github.com/chewxy/math32"

// TimeFactor returns the spawn pressure after elapsed seconds of play:
// log_base(elapsed/time_divisor + offset). It starts at log_base(offset) and
// grows slowly; it drives both how many asteroids arrive per fixed tick and
// how fast they travel.
func (s SpawnConfig) TimeFactor(elapsed float32) float32 {
	if elapsed < 0 {
		elapsed = 0
	}
	return math32.Log(elapsed/s.TimeDivisor+s.Offset) / math32.Log(s.LogBase)
}

// FixedTicks advances an accumulator by dt and returns how many whole fixed
// periods it now holds, along with the remainder.
func (s SpawnConfig) FixedTicks(acc, dt float32) (ticks int, rest float32) {
	acc += dt
	for acc >= s.Period {
		acc -= s.Period
		ticks++
	}
	return ticks, acc
}
