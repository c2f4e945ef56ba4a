//go:build tools

package syspath

import (
	_ "github.com/dmarkham/enumer"
)
