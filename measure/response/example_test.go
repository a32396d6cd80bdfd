package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/filter/iir"
	"github.com/cwbudde/algo-smooth/measure/response"
)

func ExampleFrequencyResponse() {
	newFilter := func() (response.Processor, error) {
		return iir.NewBiQuad[float64](iir.WithCutoff(5, 100))
	}

	c, err := response.FrequencyResponse(newFilter, 4096, 100)
	if err != nil {
		panic(err)
	}
	fc, _ := c.Cutoff()
	fmt.Printf("cutoff %.1f Hz, %.1f dB at 20 Hz\n", fc, c.MagnitudeAt(20))
}

func ExampleSettling() {
	step := []float64{0.5, 0.75, 0.875, 0.9375, 0.96875, 0.984375}
	n, ok := response.Settling(step, 1, 0.05)
	fmt.Println(n, ok)
	// Output:
	// 4 true
}
