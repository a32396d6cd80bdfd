// Package movingwindow provides a sliding-window arithmetic-mean filter.
//
// A [Filter] keeps the most recent N samples in a ring buffer together with
// their running sum, so each [Filter.Update] costs O(1) regardless of the
// window size:
//
//	f := movingwindow.New[float64]()
//	_ = f.SetWindowSize(8)
//	for _, x := range samples {
//		f.Update(x)
//	}
//	mean := f.Value()
//
// Until the window fills, [Filter.Value] averages over the samples seen so
// far rather than over the configured window size. Integer element types
// truncate toward zero; vector element types are averaged component-wise.
package movingwindow
