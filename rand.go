package vsl

import "github.com/rawbytedev/vsl/ieee"

// Engine selects the state transition of a random generator.
type Engine uint8

const (
	// LinearCongruential is the default engine.
	LinearCongruential Engine = iota
	// Xorshift uses Marsaglia's shift triples (13, 17, 5) for 32-bit lanes
	// and (13, 7, 17) for 64-bit lanes. A zero seed stays zero.
	Xorshift
)

// DefaultSeed is the state every lane starts from unless WithSeed is given.
const DefaultSeed = 808

type randConfig struct {
	seed   uint64
	engine Engine
}

// RandOption configures a generator.
type RandOption func(*randConfig)

// WithSeed sets the starting state. 32-bit generators keep the low 32 bits.
func WithSeed(seed uint64) RandOption {
	return func(c *randConfig) { c.seed = seed }
}

// WithEngine sets the state transition.
func WithEngine(e Engine) RandOption {
	return func(c *randConfig) { c.engine = e }
}

func newRandConfig(opts []RandOption) randConfig {
	c := randConfig{seed: DefaultSeed, engine: LinearCongruential}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func step32(e Engine, s uint32) uint32 {
	if e == Xorshift {
		s ^= s << 13
		s ^= s >> 17
		s ^= s << 5
		return s
	}
	return 196314165*s + 907633515
}

func step64(e Engine, s uint64) uint64 {
	if e == Xorshift {
		s ^= s << 13
		s ^= s >> 7
		s ^= s << 17
		return s
	}
	return 6364136223846793005*s + 1442695040888963407
}

// unit32 maps a state to [0, 1). The state is shifted down so the kept bits
// fit the significand and the conversion is exact.
func unit32(s uint32) float32 {
	const denom = 1 << (ieee.Float32SigBits + 1)
	return float32((s>>ieee.Float32ExpBits)&(denom-1)) / denom
}

func unit64(s uint64) float64 {
	const denom = 1 << (ieee.Float64SigBits + 1)
	return float64((s>>ieee.Float64ExpBits)&(denom-1)) / denom
}

// Rand32 draws float32 values from [min, max).
type Rand32 struct {
	state, seed uint32
	engine      Engine
	min, max    float32
}

// NewRand32 returns a generator over [lo, hi).
func NewRand32(lo, hi float32, opts ...RandOption) *Rand32 {
	c := newRandConfig(opts)
	return &Rand32{state: uint32(c.seed), seed: uint32(c.seed), engine: c.engine, min: lo, max: hi}
}

func (r *Rand32) Next() float32 {
	r.state = step32(r.engine, r.state)
	return (r.max-r.min)*unit32(r.state) + r.min
}

// Reset rewinds the generator to its seed.
func (r *Rand32) Reset() { r.state = r.seed }

// Rand64 draws float64 values from [min, max).
type Rand64 struct {
	state, seed uint64
	engine      Engine
	min, max    float64
}

// NewRand64 returns a generator over [lo, hi).
func NewRand64(lo, hi float64, opts ...RandOption) *Rand64 {
	c := newRandConfig(opts)
	return &Rand64{state: c.seed, seed: c.seed, engine: c.engine, min: lo, max: hi}
}

func (r *Rand64) Next() float64 {
	r.state = step64(r.engine, r.state)
	return (r.max-r.min)*unit64(r.state) + r.min
}

func (r *Rand64) Reset() { r.state = r.seed }

// RandFloat4 runs four independent float32 generators, one per lane. All
// lanes start from the same seed and so produce the same sequence until
// some of them are reset with ResetLanes.
type RandFloat4 struct {
	state    Uint4
	seed     uint32
	engine   Engine
	min, max float32
}

func NewRandFloat4(lo, hi float32, opts ...RandOption) *RandFloat4 {
	c := newRandConfig(opts)
	s := uint32(c.seed)
	return &RandFloat4{state: SplatUint4(s), seed: s, engine: c.engine, min: lo, max: hi}
}

func (r *RandFloat4) Next() Float4 {
	var v Float4
	for i := range r.state {
		r.state[i] = step32(r.engine, r.state[i])
		v[i] = (r.max-r.min)*unit32(r.state[i]) + r.min
	}
	return v
}

func (r *RandFloat4) Reset() { r.ResetLanes(TrueMask4) }

// ResetLanes rewinds only the lanes selected by m.
func (r *RandFloat4) ResetLanes(m Int4) {
	r.state = SelectUint4(m, SplatUint4(r.seed), r.state)
}

// RandDouble2 is RandFloat4 for two float64 lanes.
type RandDouble2 struct {
	state    Ulong2
	seed     uint64
	engine   Engine
	min, max float64
}

func NewRandDouble2(lo, hi float64, opts ...RandOption) *RandDouble2 {
	c := newRandConfig(opts)
	return &RandDouble2{state: SplatUlong2(c.seed), seed: c.seed, engine: c.engine, min: lo, max: hi}
}

func (r *RandDouble2) Next() Double2 {
	var v Double2
	for i := range r.state {
		r.state[i] = step64(r.engine, r.state[i])
		v[i] = (r.max-r.min)*unit64(r.state[i]) + r.min
	}
	return v
}

func (r *RandDouble2) Reset() { r.ResetLanes(TrueMask2) }

// ResetLanes rewinds only the lanes selected by m.
func (r *RandDouble2) ResetLanes(m Long2) {
	r.state = SelectUlong2(m, SplatUlong2(r.seed), r.state)
}
