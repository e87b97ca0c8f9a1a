// Command reportctl inspects the climate report domain offline: environmental
// snapshots, the solution catalog, problem types, and the seeded community
// reports.
//
// Usage:
//
//	go run ./cmd/reportctl snapshot --lat 22.5726 --lng 88.3639 -o yaml
//	go run ./cmd/reportctl solutions poor_drainage high_pollution
//	go run ./cmd/reportctl mock-reports --out data/mock/reports.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
