package syspath_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtth/syspath"
	"github.com/mtth/syspath/posix"
	"github.com/mtth/syspath/windows"
)

// swapDriver temporarily installs a driver. Call the returned function to restore the previous
// one.
func swapDriver(d syspath.Driver) func() {
	old := syspath.CurrentDriver()
	syspath.SetDriver(d)
	return func() { syspath.SetDriver(old) }
}

func TestForwarding(t *testing.T) {
	t.Run("posix", func(t *testing.T) {
		defer swapDriver(posix.New())()

		assert.Equal(t, "/", syspath.Separator())
		assert.Equal(t, ":", syspath.Delimiter())
		assert.Equal(t, "/a/c", syspath.Join("/a", "b", "..", "c"))
		assert.Equal(t, "../c", syspath.Rel("/a/b", "/a/c"))
		assert.True(t, syspath.IsAbs("/x"))
		assert.False(t, syspath.IsAbs("x"))
		assert.Equal(t, "/a", syspath.Dir("/a/b.txt"))
		assert.Equal(t, "b", syspath.Base("/a/b.txt", ".txt"))
		assert.Equal(t, ".txt", syspath.Ext("/a/b.txt"))
		assert.Equal(t, "/a/b", syspath.Normalize("/a//b"))

		syspath.SetCwd("/home/me")
		assert.Equal(t, "/home/me", syspath.Cwd())
		assert.Equal(t, "/home/me/x", syspath.Resolve("x"))

		info, err := syspath.Parse("/a/b.txt")
		require.NoError(t, err)
		assert.Equal(t, "/a/b.txt", syspath.Format(info))
		assert.Equal(t, "/a/b", syspath.ToNamespacedPath("/a/b"))
	})

	t.Run("windows", func(t *testing.T) {
		defer swapDriver(windows.New())()

		assert.Equal(t, `\`, syspath.Separator())
		assert.Equal(t, ";", syspath.Delimiter())
		assert.Equal(t, `C:\b`, syspath.Normalize(`C:\a\..\b`))
		assert.Equal(t, `\\server\share`, syspath.Join("//server", "share"))
		assert.Equal(t, `..\..\impl\bbb`, syspath.Rel(`C:\orandea\test\aaa`, `C:\orandea\impl\bbb`))

		syspath.Setenv("=C:", `C:\work`)
		assert.Equal(t, `C:\work`, syspath.Getenv("=C:"))
		assert.Equal(t, `C:\work\f`, syspath.Resolve("C:f"))
		assert.Equal(t, `\\?\C:\a`, syspath.ToNamespacedPath(`C:\a`))
	})
}

func TestSwap(t *testing.T) {
	defer swapDriver(posix.New())()
	assert.Equal(t, "a/b", syspath.Join("a", "b"))

	w := windows.New()
	syspath.SetDriver(w)
	assert.Equal(t, `a\b`, syspath.Join("a", "b"))
	assert.Same(t, w, syspath.CurrentDriver())
}

func TestUnassignedDriverPanics(t *testing.T) {
	defer swapDriver(nil)()
	require.Panics(t, func() {
		syspath.Join("a", "b")
	})
}

func TestIndependentDriverState(t *testing.T) {
	first := posix.New()
	second := posix.New()
	first.SetCwd("/one")
	second.SetCwd("/two")
	assert.Equal(t, "/one", first.Cwd())
	assert.Equal(t, "/two", second.Cwd())
}

// failingDriver wraps a driver with a Parse that always errors, to exercise the malformed-input
// surface which the structural patterns never produce on their own.
type failingDriver struct {
	syspath.Driver
}

func (d failingDriver) Parse(path string) (syspath.PathInfo, error) {
	return syspath.PathInfo{}, fmt.Errorf("%w: %q", syspath.ErrInvalidPath, path)
}

func TestMustParse(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		defer swapDriver(posix.New())()
		info := syspath.MustParse("/a/b")
		assert.Equal(t, "b", info.Base)
	})

	t.Run("panics on malformed input", func(t *testing.T) {
		defer swapDriver(failingDriver{posix.New()})()
		require.Panics(t, func() {
			syspath.MustParse("boom")
		})
	})
}

func TestParseErrorIsSentinel(t *testing.T) {
	defer swapDriver(failingDriver{posix.New()})()
	_, err := syspath.Parse("x")
	require.ErrorIs(t, err, syspath.ErrInvalidPath)
}

func TestFlavorStrings(t *testing.T) {
	assert.Equal(t, "POSIX", syspath.FlavorPOSIX.String())
	assert.Equal(t, "WINDOWS", syspath.FlavorWindows.String())

	flavor, err := syspath.FlavorString("windows")
	require.NoError(t, err)
	assert.Equal(t, syspath.FlavorWindows, flavor)
	assert.True(t, flavor.IsAFlavor())
}
