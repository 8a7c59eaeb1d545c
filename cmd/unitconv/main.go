// Command unitconv evaluates and converts dimensioned quantities.
//
//	unitconv eval "0.5 * 80 kg * (10 m/s)^2"
//	unitconv convert "100 km/h" "m/s"
//	unitconv units --export > units.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
