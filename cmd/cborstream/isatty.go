package main

import "os"

// isTerminal reports whether f looks like an interactive terminal,
// used to decide between zerolog's human-readable console writer and
// its default JSON output. Grounded on the same stat-based check the
// pack's CLI tools use ahead of pulling in a dedicated terminal
// detection library.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
