package game

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// wrap maps v into [0, n) with toroidal semantics, including negative v.
func wrap(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MapToRange maps value from [min1, max1] onto [min2, max2] linearly.
// Values below min1 give min2 and values above max1 give max2. The
// interpolated result is truncated toward zero, so the output moves in whole
// steps rather than rounding to the nearest one.
func MapToRange(value, min1, max1, min2, max2 int) int {
	if value < min1 {
		return min2
	}
	if value > max1 {
		return max2
	}
	if max1 == min1 {
		return max2
	}
	return min2 + (value-min1)*(max2-min2)/(max1-min1)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Intn returns a value in [0, n). Rejection sampling keeps the draw uniform.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		v := r.NextU64()
		if v < limit {
			return int(v % bound)
		}
	}
}
