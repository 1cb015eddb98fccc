//go:build amd64 && !purego

package lanes

import (
	_ "github.com/cwbudde/algo-geom/internal/lanes/arch/amd64/sse2" // register SSE backend
	_ "github.com/cwbudde/algo-geom/internal/lanes/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-geom/internal/lanes/registry"        // initialize backend registry
)
