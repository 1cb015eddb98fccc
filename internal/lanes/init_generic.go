//go:build !amd64

package lanes

// NEON kernels for arm64 are a planned backend; until they land, every
// non-amd64 architecture uses the portable implementation.

import (
	_ "github.com/cwbudde/algo-geom/internal/lanes/arch/generic"
	_ "github.com/cwbudde/algo-geom/internal/lanes/registry"
)
