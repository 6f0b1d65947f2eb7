// Package xveinminer provides the version information for xVeinMiner.
package xveinminer

// Version is the current version of xVeinMiner.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
