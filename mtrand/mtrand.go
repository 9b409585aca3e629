// Package mtrand is a Mersenne Twister (MT19937) generator that seeds and
// draws exactly like CPython's random module, so a run seeded here repeats
// the draw sequence of a Python program using the same seed.
package mtrand

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Rand is a MT19937 generator. It is not safe for concurrent use.
type Rand struct {
	mt  [n]uint32
	mti int
}

// New returns a generator seeded like random.seed(seed).
func New(seed int64) *Rand {
	r := new(Rand)
	r.Seed(seed)
	return r
}

// Seed reseeds r. Like CPython, the absolute value of seed is split into
// 32-bit words, least significant first, and fed to init_by_array.
func (r *Rand) Seed(seed int64) {
	u := uint64(seed)
	if seed < 0 {
		u = uint64(-seed)
	}
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	r.seedArray(key)
}

func (r *Rand) seedScalar(s uint32) {
	r.mt[0] = s
	for i := 1; i < n; i++ {
		r.mt[i] = 1812433253*(r.mt[i-1]^(r.mt[i-1]>>30)) + uint32(i)
	}
	r.mti = n
}

func (r *Rand) seedArray(key []uint32) {
	r.seedScalar(19650218)
	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			r.mt[0] = r.mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			r.mt[0] = r.mt[n-1]
			i = 1
		}
	}
	r.mt[0] = 0x80000000
}

func (r *Rand) twist() {
	mag01 := [2]uint32{0, matrixA}
	var kk int
	for kk = 0; kk < n-m; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+m] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < n-1; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+(m-n)] ^ (y >> 1) ^ mag01[y&1]
	}
	y := (r.mt[n-1] & upperMask) | (r.mt[0] & lowerMask)
	r.mt[n-1] = r.mt[m-1] ^ (y >> 1) ^ mag01[y&1]
	r.mti = 0
}

// Uint32 returns the next tempered 32-bit output.
func (r *Rand) Uint32() uint32 {
	if r.mti >= n {
		r.twist()
	}
	y := r.mt[r.mti]
	r.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Getrandbits returns a value with k random bits, 0 < k <= 64, built the way
// random.getrandbits builds it: 32-bit words, least significant first, with
// the last word shifted down to the remaining bit count.
func (r *Rand) Getrandbits(k int) uint64 {
	if k <= 0 || k > 64 {
		panic("mtrand: Getrandbits out of range")
	}
	if k <= 32 {
		return uint64(r.Uint32() >> uint(32-k))
	}
	lo := uint64(r.Uint32())
	hi := uint64(r.Uint32() >> uint(64-k))
	return hi<<32 | lo
}

// below returns a uniform value in [0, n) by rejection sampling on
// bitlen(n) bits.
func (r *Rand) below(n uint64) uint64 {
	k := 0
	for v := n; v != 0; v >>= 1 {
		k++
	}
	v := r.Getrandbits(k)
	for v >= n {
		v = r.Getrandbits(k)
	}
	return v
}

// Intn returns a uniform int in [0, n), matching random.randrange(n).
// It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("mtrand: invalid argument to Intn")
	}
	return int(r.below(uint64(n)))
}

// Randint returns a uniform int in [a, b], matching random.randint(a, b).
func (r *Rand) Randint(a, b int) int {
	if b < a {
		panic("mtrand: empty range for Randint")
	}
	return a + int(r.below(uint64(b-a)+1))
}

// Float64 returns a float in [0, 1) with 53 bits of precision, matching
// random.random().
func (r *Rand) Float64() float64 {
	a := r.Uint32() >> 5
	b := r.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
