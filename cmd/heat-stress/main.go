// heat-stress loads the world along an outward spiral until a simulation
// step blows its real-time budget, then prints the trip summary.
package main

import (
	"os"
	"time"

	"github.com/integrii/flaggy"

	"thermvox/internal/stress"
)

func main() {
	var seed uint32
	dt := 1.0

	flaggy.SetName("heat-stress")
	flaggy.SetDescription("headless growth stress harness for the thermal world")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.UInt32(&seed, "s", "seed", "PRNG seed (0 = from the clock)")
	flaggy.Float64(&dt, "d", "dt", "real-time budget: simulated seconds per step")
	flaggy.Parse()

	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	stress.RunHeadless(seed, dt, os.Stdout)
}
