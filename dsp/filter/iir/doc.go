// Package iir provides streaming low-pass IIR filters for scalars, vectors
// and orientations.
//
// Every filter implements [Filter] (Set, Fc, Value) and [Processor]
// (adding Process):
//
//   - [OnePole] is a first-order low-pass, an exponential moving average
//     with weight a0 = w/(w+1), w = 2*pi*fc/fs. Roll-off is 6 dB/octave.
//   - [OnePoleQuaternion] runs the same recursion on unit quaternions,
//     replacing the linear blend with spherical interpolation.
//   - [BiQuad] is a second-order (Butterworth by default) low-pass with
//     12 dB/octave roll-off.
//
// [OnePole] and [BiQuad] are generic over the element type; the
// arithmetic comes from a [vec.Space], so the same filter runs over
// float64, float32 or [vec.Vec3] values:
//
//	f, err := iir.NewOnePoleVector3(iir.WithCutoff(5, 100))
//	if err != nil {
//		return err
//	}
//	for _, a := range accel {
//		smoothed := f.Process(a)
//		...
//	}
//
// New filters pass samples through unchanged until tuned with [WithCutoff]
// or Fc. Tuning never clears the filter history. Invalid tunings (fs <= 0,
// fc <= 0, fc >= fs/2, non-finite values, q <= 0) are rejected and the
// previous coefficients are kept.
//
// Filters are plain values without locking; each instance must be driven
// by a single goroutine.
package iir
