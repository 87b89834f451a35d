// main is the entry point for the beacon CLI.
package main

import (
	"github.com/beaconlabs/beacon/cmd"
	"github.com/beaconlabs/beacon/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("beacon failed", err)
	}
}
