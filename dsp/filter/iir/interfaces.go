package iir

import (
	"github.com/cwbudde/algo-smooth/dsp/quat"
	"github.com/cwbudde/algo-smooth/dsp/vec"
)

var (
	_ Processor[float64]         = (*OnePole[float64])(nil)
	_ Processor[float32]         = (*OnePole[float32])(nil)
	_ Processor[vec.Vector3d]    = (*OnePoleVector3)(nil)
	_ Processor[quat.Quaternion] = (*OnePoleQuaternion)(nil)
	_ Processor[float64]         = (*BiQuad[float64])(nil)
	_ Processor[vec.Vector3d]    = (*BiQuadVector3)(nil)
)
