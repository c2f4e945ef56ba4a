package syspath

import (
	"log/slog"

	"github.com/mtth/syspath/internal/except"
)

// activeDriver is the process-wide driver consulted by the package-level functions. There is no
// default: hosts install one with SetDriver before use. Calling a forwarding function with no
// driver installed panics.
var activeDriver Driver

// SetDriver installs d as the process-wide driver.
func SetDriver(d Driver) {
	activeDriver = d
	if d != nil {
		slog.Debug("Installed path driver.", except.LogDataAttrs(slog.String("flavor", d.Flavor().String())))
	}
}

// CurrentDriver returns the installed driver, or nil.
func CurrentDriver() Driver { return activeDriver }

// Separator forwards to the active driver.
func Separator() string { return activeDriver.Separator() }

// Delimiter forwards to the active driver.
func Delimiter() string { return activeDriver.Delimiter() }

// Cwd forwards to the active driver.
func Cwd() string { return activeDriver.Cwd() }

// SetCwd forwards to the active driver.
func SetCwd(dir string) { activeDriver.SetCwd(dir) }

// Getenv forwards to the active driver.
func Getenv(key string) string { return activeDriver.Getenv(key) }

// Setenv forwards to the active driver.
func Setenv(key, value string) { activeDriver.Setenv(key, value) }

// Join forwards to the active driver.
func Join(elem ...string) string { return activeDriver.Join(elem...) }

// Normalize forwards to the active driver.
func Normalize(path string) string { return activeDriver.Normalize(path) }

// IsAbs forwards to the active driver.
func IsAbs(path string) bool { return activeDriver.IsAbs(path) }

// Resolve forwards to the active driver.
func Resolve(paths ...string) string { return activeDriver.Resolve(paths...) }

// Rel forwards to the active driver.
func Rel(from, to string) string { return activeDriver.Rel(from, to) }

// Dir forwards to the active driver.
func Dir(path string) string { return activeDriver.Dir(path) }

// Base forwards to the active driver.
func Base(path, suffix string) string { return activeDriver.Base(path, suffix) }

// Ext forwards to the active driver.
func Ext(path string) string { return activeDriver.Ext(path) }

// Format forwards to the active driver.
func Format(info PathInfo) string { return activeDriver.Format(info) }

// Parse forwards to the active driver.
func Parse(path string) (PathInfo, error) { return activeDriver.Parse(path) }

// ToNamespacedPath forwards to the active driver.
func ToNamespacedPath(path string) string { return activeDriver.ToNamespacedPath(path) }

// MustParse is a Parse variant which logs and panics on malformed input.
func MustParse(path string) PathInfo {
	info, err := Parse(path)
	if err != nil {
		slog.Error("Path parse failed.", except.LogErrAttr(err))
		except.Require(err)
	}
	return info
}
