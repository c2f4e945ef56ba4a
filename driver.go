package syspath

import "errors"

// ErrInvalidPath is returned by Parse when its input cannot be decomposed into path components.
var ErrInvalidPath = errors.New("invalid path")

// PathInfo is a decomposed path. Base is always Name+Ext; Dir includes Root and has no trailing
// separator.
type PathInfo struct {
	// Absolute-root prefix, e.g. "/", "C:\" or "\\host\share\". Empty for relative paths.
	Root string
	// Full directory portion, root included.
	Dir string
	// Final path segment, extension included.
	Base string
	// Extension of the final segment with its leading dot, or empty.
	Ext string
	// Final segment without its extension.
	Name string
}

// Driver implements path semantics for one syntax. Implementations are pure functions over their
// arguments plus the instance's cwd and env state; they never perform I/O. Concurrent mutation of
// cwd or env must be synchronized by the caller.
type Driver interface {
	// Flavor identifies the syntax implemented by the driver.
	Flavor() Flavor
	// Separator is the path segment separator, "/" or "\\".
	Separator() string
	// Delimiter is the path list delimiter, ":" or ";".
	Delimiter() string

	// Cwd returns the driver's working directory.
	Cwd() string
	// SetCwd replaces the driver's working directory.
	SetCwd(dir string)
	// Getenv returns the value stored under key, or empty.
	Getenv(key string) string
	// Setenv stores a value under key.
	Setenv(key, value string)

	// Join concatenates the non-empty elements with the separator and normalizes the result.
	Join(elem ...string) string
	// Normalize collapses redundant separators and resolves "." and ".." segments. A trailing
	// separator is preserved; an empty relative result becomes ".".
	Normalize(path string) string
	// IsAbs reports whether the path is absolute.
	IsAbs(path string) bool
	// Resolve processes paths from right to left, prepending each until an absolute path is
	// built, then falls back to the working directory.
	Resolve(paths ...string) string
	// Rel returns the relative path from from to to, resolving both first.
	Rel(from, to string) string
	// Dir returns the directory portion of path, without trailing separator.
	Dir(path string) string
	// Base returns the final segment of path. A non-empty suffix is stripped when the segment
	// ends with it.
	Base(path, suffix string) string
	// Ext returns the extension of the final segment, leading dot included, or empty.
	Ext(path string) string
	// Format assembles a path string from info, preferring Dir and Base.
	Format(info PathInfo) string
	// Parse decomposes path into a PathInfo. It returns an error wrapping ErrInvalidPath when
	// the input does not split into components.
	Parse(path string) (PathInfo, error)
	// ToNamespacedPath rewrites a path into its long namespace-prefixed form where the syntax
	// has one; otherwise it returns the input unchanged.
	ToNamespacedPath(path string) string
}
