//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package main

// isTerminal is always false where termios is unavailable, so output stays plain.
func isTerminal(fd int) bool {
	return false
}
