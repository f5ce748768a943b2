package models

import "fmt"

// TrapNumber converts a 0-based entrant index into its 1-based display number.
func TrapNumber(entrant int) int {
	return entrant + 1
}

// RunnerName returns the display name of an entrant.
func RunnerName(entrant int) string {
	return fmt.Sprintf("Greyhound %d", TrapNumber(entrant))
}
