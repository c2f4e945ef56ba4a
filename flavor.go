package syspath

// Flavor captures the path syntaxes known to this module.
type Flavor int

//go:generate go run github.com/dmarkham/enumer -type=Flavor -trimprefix Flavor -transform snake-upper
const (
	// Forward-slash separated paths with a single "/" root.
	FlavorPOSIX Flavor = iota
	// Backslash separated paths with drive letter and UNC roots.
	FlavorWindows
)
