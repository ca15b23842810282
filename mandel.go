package mandel

import (
	"errors"
	"fmt"
	"sort"
)

// NoCenter is a fixed-centre coordinate outside the domain. Passing it as
// cx and cy to Initialize makes zooms follow the cursor.
const NoCenter = "99.9"

var ErrUnknownRegion = errors.New("mandel: unknown region")

// Region within the Mandelbrot set, as decimal strings so it can carry
// more digits than a float64.
type Region struct {
	Xs, Xe string
	Ys, Ye string
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full is the whole domain the escape-time algorithm is run over
	Full = Region{
		Xs: "-2.0",
		Xe: "1.0",
		Ys: "-1.5",
		Ye: "1.5",
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xs: "-0.8",
		Xe: "-0.7",
		Ys: "0.05",
		Ye: "0.15",
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xs: "-1.85",
		Xe: "-1.75",
		Ys: "-0.10",
		Ye: "-0.02",
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xs: "-0.7435",
		Xe: "-0.7420",
		Ys: "0.1310",
		Ye: "0.1325",
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xs: "-0.7480",
		Xe: "-0.7450",
		Ys: "0.0950",
		Ye: "0.0980",
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xs: "-0.7400",
		Xe: "-0.7350",
		Ys: "0.1800",
		Ye: "0.1850",
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xs: "-1.7390",
		Xe: "-1.7375",
		Ys: "-0.0235",
		Ye: "-0.0220",
	}
)

var landmarks = map[string]Region{
	"full":                    Full,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

// Landmark returns the region registered under name. The empty name is Full.
func Landmark(name string) (Region, error) {
	if name == "" {
		return Full, nil
	}
	r, ok := landmarks[name]
	if !ok {
		return Region{}, fmt.Errorf("%w %q (have %v)", ErrUnknownRegion, name, LandmarkNames())
	}
	return r, nil
}

func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
