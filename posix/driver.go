// Package posix implements forward-slash path semantics.
package posix

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mtth/syspath"
	"github.com/mtth/syspath/internal/except"
	"github.com/mtth/syspath/internal/segments"
)

const (
	sep       = "/"
	delimiter = ":"
)

// splitPathRe captures root, directory body, base and extension in one pass. The lazy extension
// group never claims "." or ".." as an extension; dotfiles keep their leading dot in the base.
var splitPathRe = regexp.MustCompile(`^(/?|)([\s\S]*?)((?:\.{1,2}|[^/]+?|)(\.[^./]*|))(?:[/]*)$`)

// Driver implements syspath.Driver for POSIX syntax. The zero value is usable; cwd and env start
// empty and are only ever set by the host.
type Driver struct {
	cwd string
	env map[string]string
}

var _ syspath.Driver = (*Driver)(nil)

// New returns a driver with empty working directory and environment.
func New() *Driver {
	return &Driver{env: make(map[string]string)}
}

// Flavor implements syspath.Driver.
func (d *Driver) Flavor() syspath.Flavor { return syspath.FlavorPOSIX }

// Separator implements syspath.Driver.
func (d *Driver) Separator() string { return sep }

// Delimiter implements syspath.Driver.
func (d *Driver) Delimiter() string { return delimiter }

// Cwd implements syspath.Driver.
func (d *Driver) Cwd() string { return d.cwd }

// SetCwd implements syspath.Driver.
func (d *Driver) SetCwd(dir string) { d.cwd = dir }

// Getenv implements syspath.Driver. The environment is unused by POSIX path semantics but kept so
// drivers stay interchangeable.
func (d *Driver) Getenv(key string) string { return d.env[key] }

// Setenv implements syspath.Driver.
func (d *Driver) Setenv(key, value string) {
	if d.env == nil {
		d.env = make(map[string]string)
	}
	d.env[key] = value
}

// splitPath returns the four structural components of path: root, directory body (trailing slash
// included), base and extension.
func splitPath(path string) []string {
	m := splitPathRe.FindStringSubmatch(path)
	if m == nil {
		return nil
	}
	return m[1:]
}

// Resolve implements syspath.Driver. Arguments are processed right to left until an absolute path
// is assembled, with the working directory as final fallback.
func (d *Driver) Resolve(paths ...string) string {
	var resolved string
	absolute := false
	for i := len(paths) - 1; i >= -1 && !absolute; i-- {
		var path string
		if i >= 0 {
			path = paths[i]
		} else {
			path = d.cwd
		}
		if path == "" {
			continue
		}
		resolved = path + sep + resolved
		absolute = path[0] == '/'
	}
	resolved = strings.Join(segments.Normalize(strings.Split(resolved, sep), !absolute), sep)
	if absolute {
		return sep + resolved
	}
	if resolved == "" {
		return "."
	}
	return resolved
}

// Normalize implements syspath.Driver.
func (d *Driver) Normalize(path string) string {
	if path == "" {
		return "."
	}
	absolute := path[0] == '/'
	trailing := path[len(path)-1] == '/'
	path = strings.Join(segments.Normalize(strings.Split(path, sep), !absolute), sep)
	if path == "" && !absolute {
		path = "."
	}
	if path != "" && trailing {
		path += sep
	}
	if absolute {
		return sep + path
	}
	return path
}

// IsAbs implements syspath.Driver.
func (d *Driver) IsAbs(path string) bool {
	return path != "" && path[0] == '/'
}

// Join implements syspath.Driver.
func (d *Driver) Join(elem ...string) string {
	var joined string
	for _, e := range elem {
		if e == "" {
			continue
		}
		if joined == "" {
			joined = e
		} else {
			joined += sep + e
		}
	}
	return d.Normalize(joined)
}

// Rel implements syspath.Driver. Both endpoints are resolved before comparison; segment matching
// is case-sensitive.
func (d *Driver) Rel(from, to string) string {
	fromParts := segments.TrimEmptyEnds(strings.Split(d.Resolve(from)[1:], sep))
	toParts := segments.TrimEmptyEnds(strings.Split(d.Resolve(to)[1:], sep))

	shared := min(len(fromParts), len(toParts))
	for i := 0; i < shared; i++ {
		if fromParts[i] != toParts[i] {
			shared = i
			break
		}
	}

	var out []string
	for i := shared; i < len(fromParts); i++ {
		out = append(out, "..")
	}
	out = append(out, toParts[shared:]...)
	return strings.Join(out, sep)
}

// Dir implements syspath.Driver.
func (d *Driver) Dir(path string) string {
	parts := splitPath(path)
	except.Must(parts != nil, "unsplittable path: %q", path)
	root, dir := parts[0], parts[1]
	if root == "" && dir == "" {
		return "."
	}
	if dir != "" {
		dir = dir[:len(dir)-1]
	}
	return root + dir
}

// Base implements syspath.Driver. A non-empty suffix is stripped when base ends with it, compared
// case-sensitively.
func (d *Driver) Base(path, suffix string) string {
	parts := splitPath(path)
	except.Must(parts != nil, "unsplittable path: %q", path)
	base := parts[2]
	if suffix != "" && strings.HasSuffix(base, suffix) {
		base = base[:len(base)-len(suffix)]
	}
	return base
}

// Ext implements syspath.Driver.
func (d *Driver) Ext(path string) string {
	parts := splitPath(path)
	except.Must(parts != nil, "unsplittable path: %q", path)
	return parts[3]
}

// Format implements syspath.Driver.
func (d *Driver) Format(info syspath.PathInfo) string {
	if info.Dir == "" {
		return info.Base
	}
	return info.Dir + sep + info.Base
}

// Parse implements syspath.Driver.
func (d *Driver) Parse(path string) (syspath.PathInfo, error) {
	parts := splitPath(path)
	if len(parts) != 4 {
		return syspath.PathInfo{}, fmt.Errorf("%w: %q", syspath.ErrInvalidPath, path)
	}
	root, dir, base, ext := parts[0], parts[1], parts[2], parts[3]
	if dir != "" {
		dir = dir[:len(dir)-1]
	}
	return syspath.PathInfo{
		Root: root,
		Dir:  root + dir,
		Base: base,
		Ext:  ext,
		Name: base[:len(base)-len(ext)],
	}, nil
}

// ToNamespacedPath implements syspath.Driver. POSIX has no long-path namespace, so the input is
// returned unchanged.
func (d *Driver) ToNamespacedPath(path string) string { return path }
