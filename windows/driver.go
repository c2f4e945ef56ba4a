// Package windows implements backslash path semantics with drive letter and UNC awareness.
package windows

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mtth/syspath"
	"github.com/mtth/syspath/internal/except"
	"github.com/mtth/syspath/internal/segments"
)

const (
	sep       = `\`
	delimiter = ";"
)

var (
	// splitDeviceRe captures an optional device (drive letter or UNC host+share), an optional
	// root separator, and the remaining tail. Both slash styles are accepted on input.
	splitDeviceRe = regexp.MustCompile(`^([a-zA-Z]:|[\\/]{2}[^\\/]+[\\/]+[^\\/]+)?([\\/])?([\s\S]*?)$`)
	// splitTailRe decomposes a device-free tail into directory body, base and extension, with
	// the same dot-extension convention as the POSIX splitter.
	splitTailRe = regexp.MustCompile(`^([\s\S]*?)((?:\.{1,2}|[^\\/]+?|)(\.[^./\\]*|))(?:[\\/]*)$`)

	sepRe        = regexp.MustCompile(`[\\/]+`)
	leadingSepRe = regexp.MustCompile(`^[\\/]+`)
	driveRootRe  = regexp.MustCompile(`^[a-zA-Z]:\\`)
	uncRootRe    = regexp.MustCompile(`^\\\\[^?.]`)
	uncIntentRe  = regexp.MustCompile(`^[\\/]{2}[^\\/]`)
	extraSepsRe  = regexp.MustCompile(`^[\\/]{2,}`)
)

// Driver implements syspath.Driver for Windows syntax. env holds drive-specific working
// directories under keys of the form "=C:", consulted by Resolve.
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
func (d *Driver) Flavor() syspath.Flavor { return syspath.FlavorWindows }

// Separator implements syspath.Driver.
func (d *Driver) Separator() string { return sep }

// Delimiter implements syspath.Driver.
func (d *Driver) Delimiter() string { return delimiter }

// Cwd implements syspath.Driver.
func (d *Driver) Cwd() string { return d.cwd }

// SetCwd implements syspath.Driver.
func (d *Driver) SetCwd(dir string) { d.cwd = dir }

// Getenv implements syspath.Driver.
func (d *Driver) Getenv(key string) string { return d.env[key] }

// Setenv implements syspath.Driver.
func (d *Driver) Setenv(key, value string) {
	if d.env == nil {
		d.env = make(map[string]string)
	}
	d.env[key] = value
}

// pathStat is the structural breakdown of a path: its device prefix, whether that device is a UNC
// host+share, whether the path is absolute, and everything after the device and root separator.
type pathStat struct {
	device string
	isUnc  bool
	isAbs  bool
	tail   string
}

func statPath(path string) pathStat {
	m := splitDeviceRe.FindStringSubmatch(path)
	except.Must(m != nil, "unsplittable path: %q", path)
	device := m[1]
	isUnc := device != "" && device[1] != ':'
	return pathStat{
		device: device,
		isUnc:  isUnc,
		// UNC paths are always absolute.
		isAbs: isUnc || m[2] != "",
		tail:  m[3],
	}
}

// splitPath returns root (device plus root separator), directory body, base and extension.
func splitPath(path string) []string {
	m := splitDeviceRe.FindStringSubmatch(path)
	if m == nil {
		return nil
	}
	device, tail := m[1]+m[2], m[3]
	m2 := splitTailRe.FindStringSubmatch(tail)
	if m2 == nil {
		return nil
	}
	return []string{device, m2[1], m2[2], m2[3]}
}

// normalizeUNCRoot rewrites a device into canonical UNC root form, "\\server\share".
func normalizeUNCRoot(device string) string {
	return `\\` + sepRe.ReplaceAllString(leadingSepRe.ReplaceAllString(device, ""), sep)
}

// Resolve implements syspath.Driver. Arguments are processed right to left until both a device and
// an absolute root are found, falling back to the working directory and then to the drive-specific
// working directory stored under env["=<DRIVE>:"]. Candidates naming a different device than the
// one already resolved are skipped; device comparison is case-insensitive.
func (d *Driver) Resolve(paths ...string) string {
	var device, tail string
	absolute := false
	for i := len(paths) - 1; i >= -1 && !(device != "" && absolute); i-- {
		var path string
		switch {
		case i >= 0:
			path = paths[i]
		case device == "":
			path = d.cwd
		default:
			// A drive letter was found but no absolute root yet: consult the
			// drive-specific working directory, defaulting to the drive root when the
			// stored value is missing or points elsewhere.
			path = d.env["="+device]
			if len(path) < 3 || !strings.EqualFold(path[:3], device+sep) {
				path = device + sep
			}
		}
		if path == "" {
			continue
		}
		st := statPath(path)
		if st.device != "" && device != "" && !strings.EqualFold(st.device, device) {
			continue
		}
		if device == "" {
			device = st.device
		}
		if !absolute {
			tail = st.tail + sep + tail
			absolute = st.isAbs
		}
	}

	isUnc := device != "" && device[1] != ':'
	if isUnc {
		device = normalizeUNCRoot(device)
	}
	tail = strings.Join(segments.Normalize(sepRe.Split(tail, -1), !absolute), sep)

	var root string
	if absolute && !(isUnc && tail == "") {
		// A bare UNC root is already absolute in canonical form; appending the
		// separator would leave a dangling one.
		root = sep
	}
	if res := device + root + tail; res != "" {
		return res
	}
	return "."
}

// Normalize implements syspath.Driver.
func (d *Driver) Normalize(path string) string {
	st := statPath(path)
	device, tail := st.device, st.tail
	trailing := tail != "" && strings.ContainsAny(tail[len(tail)-1:], `\/`)
	tail = strings.Join(segments.Normalize(sepRe.Split(tail, -1), !st.isAbs), sep)
	if tail == "" && !st.isAbs {
		tail = "."
	}
	if tail != "" && trailing {
		tail += sep
	}
	if st.isUnc {
		device = normalizeUNCRoot(device)
		if tail == "" {
			return device
		}
	}
	if st.isAbs {
		return device + sep + tail
	}
	return device + tail
}

// IsAbs implements syspath.Driver.
func (d *Driver) IsAbs(path string) bool {
	return statPath(path).isAbs
}

// Join implements syspath.Driver. Unless the first non-empty element is an intentional UNC prefix
// (exactly two separators followed by something else), a leading run of separators is collapsed to
// one so Normalize does not misread it as a UNC marker.
func (d *Driver) Join(elem ...string) string {
	var parts []string
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	joined := strings.Join(parts, sep)
	if len(parts) > 0 && !uncIntentRe.MatchString(parts[0]) {
		joined = extraSepsRe.ReplaceAllString(joined, sep)
	}
	return d.Normalize(joined)
}

// Rel implements syspath.Driver. Segment comparison is case-insensitive, but the result is built
// from the original-case to segments. When from and to share no leading segments (different
// devices), to is returned as resolved, since no relative path can bridge them.
func (d *Driver) Rel(from, to string) string {
	toResolved := d.Resolve(to)
	lowerFrom := strings.ToLower(d.Resolve(from))
	lowerTo := strings.ToLower(toResolved)

	toParts := segments.TrimEmptyEnds(strings.Split(toResolved, sep))
	lowerFromParts := segments.TrimEmptyEnds(strings.Split(lowerFrom, sep))
	lowerToParts := segments.TrimEmptyEnds(strings.Split(lowerTo, sep))

	shared := min(len(lowerFromParts), len(lowerToParts))
	for i := 0; i < shared; i++ {
		if lowerFromParts[i] != lowerToParts[i] {
			shared = i
			break
		}
	}
	if shared == 0 {
		return toResolved
	}

	var out []string
	for i := shared; i < len(lowerFromParts); i++ {
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

// Base implements syspath.Driver. Suffix comparison is case-insensitive, matching filesystem
// semantics on Windows.
func (d *Driver) Base(path, suffix string) string {
	parts := splitPath(path)
	except.Must(parts != nil, "unsplittable path: %q", path)
	base := parts[2]
	if suffix != "" && len(base) >= len(suffix) &&
		strings.EqualFold(base[len(base)-len(suffix):], suffix) {
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

// Format implements syspath.Driver. A Dir already carrying a trailing separator is joined as-is.
func (d *Driver) Format(info syspath.PathInfo) string {
	if info.Dir == "" {
		return info.Base
	}
	if strings.HasSuffix(info.Dir, sep) {
		return info.Dir + info.Base
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

// ToNamespacedPath implements syspath.Driver. Local drive paths gain the "\\?\" prefix and UNC
// paths the "\\?\UNC\" prefix after resolution; anything else passes through unchanged.
func (d *Driver) ToNamespacedPath(path string) string {
	if path == "" {
		return ""
	}
	resolved := d.Resolve(path)
	if driveRootRe.MatchString(resolved) {
		return `\\?\` + resolved
	}
	if uncRootRe.MatchString(resolved) {
		return `\\?\UNC\` + resolved[2:]
	}
	return path
}
