// Package version exposes the library's own semantic version string.
package version

const versionString = "0.1.0"

// String returns the library's semantic version.
func String() string {
	return versionString
}
