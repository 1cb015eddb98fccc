//go:build amd64 && purego

package lanes

import (
	_ "github.com/cwbudde/algo-geom/internal/lanes/arch/generic"
	_ "github.com/cwbudde/algo-geom/internal/lanes/registry"
)
