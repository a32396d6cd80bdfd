package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/quat"
	"github.com/cwbudde/algo-smooth/dsp/vec"
)

// ErrInvalidLength reports a non-positive sample count.
var ErrInvalidLength = errors.New("signal: samples must be > 0")

// Generator creates deterministic test streams from a shared configuration.
// Every call starts from the configured seed, so repeated calls with the
// same arguments return identical data.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used for noise.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a signal generator with the default seed.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a signal generator with signal-specific
// options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

func (g *Generator) rng() *rand.Rand {
	return rand.New(rand.NewSource(g.seed))
}

func checkLength(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}
	return nil
}

// Sine generates amplitude*sin(2*pi*freqHz*t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := checkLength(samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := checkLength(samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := g.rng()
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// NoisySine returns a sine with added uniform noise, the usual input for
// judging a low-pass: the sine is the reference, the noise is what the
// filter should remove.
func (g *Generator) NoisySine(freqHz, amplitude, noise float64, samples int) (clean, noisy []float64, err error) {
	clean, err = g.Sine(freqHz, amplitude, samples)
	if err != nil {
		return nil, nil, err
	}
	n, err := g.WhiteNoise(noise, samples)
	if err != nil {
		return nil, nil, err
	}
	noisy = make([]float64, samples)
	for i := range noisy {
		noisy[i] = clean[i] + n[i]
	}
	return clean, noisy, nil
}

// NoisyVector3 returns samples readings of base, each axis disturbed by
// independent uniform noise in [-noise, noise]. It models an accelerometer
// or magnetometer at rest.
func (g *Generator) NoisyVector3(base vec.Vector3d, noise float64, samples int) ([]vec.Vector3d, error) {
	if err := checkLength(samples); err != nil {
		return nil, err
	}
	if noise < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", noise)
	}
	out := make([]vec.Vector3d, samples)
	rng := g.rng()
	for i := range out {
		out[i] = vec.New(
			base.X+(rng.Float64()*2-1)*noise,
			base.Y+(rng.Float64()*2-1)*noise,
			base.Z+(rng.Float64()*2-1)*noise,
		)
	}
	return out, nil
}

// JitteredOrientation returns samples orientations scattered around base.
// Each sample is base rotated about a random axis by an angle drawn
// uniformly from [0, maxAngle] radians.
func (g *Generator) JitteredOrientation(base quat.Quaternion, maxAngle float64, samples int) ([]quat.Quaternion, error) {
	if err := checkLength(samples); err != nil {
		return nil, err
	}
	if maxAngle < 0 || maxAngle > math.Pi {
		return nil, fmt.Errorf("signal: jitter angle must be in [0, pi]: %f", maxAngle)
	}
	base = base.Normalized()
	out := make([]quat.Quaternion, samples)
	rng := g.rng()
	for i := range out {
		// Uniform direction on the sphere.
		z := rng.Float64()*2 - 1
		phi := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		jitter := quat.FromAxisAngle(r*math.Cos(phi), r*math.Sin(phi), z, rng.Float64()*maxAngle)
		out[i] = base.Mul(jitter)
	}
	return out, nil
}

// GaussMarkov returns a first-order Gauss-Markov (Ornstein-Uhlenbeck)
// process sampled at the configured rate. It starts at start, is pulled
// toward mu at rate theta (1/s) and driven by Gaussian noise of volatility
// sigma. It models slowly drifting sensor bias:
//
//	x[n+1] = x[n] + theta*(mu - x[n])*dt + sigma*sqrt(dt)*N(0, 1)
func (g *Generator) GaussMarkov(start, theta, mu, sigma float64, samples int) ([]float64, error) {
	if err := checkLength(samples); err != nil {
		return nil, err
	}
	if theta < 0 || sigma < 0 {
		return nil, fmt.Errorf("signal: theta and sigma must be >= 0: %f, %f", theta, sigma)
	}
	dt := 1 / g.cfg.SampleRate
	diffusion := sigma * math.Sqrt(dt)
	out := make([]float64, samples)
	rng := g.rng()
	x := start
	for i := range out {
		out[i] = x
		x += theta*(mu-x)*dt + diffusion*rng.NormFloat64()
	}
	return out, nil
}
