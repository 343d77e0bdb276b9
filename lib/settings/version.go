package settings

const Version = "0.1.0"

// BuildInfo returns the version and release identifier reported by the
// health endpoint.
func BuildInfo() (string, string) {
	return Version, Version
}
