package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/signal"
	"github.com/cwbudde/algo-smooth/dsp/vec"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(100))
	x, err := g.Sine(25, 1, 5)
	if err != nil {
		panic(err)
	}
	for i := range x {
		if math.Abs(x[i]) < 1e-12 {
			x[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleGenerator_NoisyVector3() {
	g := signal.NewGenerator()
	readings, err := g.NoisyVector3(vec.New(0.0, 0.0, 9.81), 0, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(readings), readings[1].Z)

	// Output:
	// 2 9.81
}
