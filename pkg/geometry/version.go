package geometry

// Version information for the geometry module.
const (
	// Version is the current version of the geometry module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
