package lanes

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-geom/internal/lanes/registry"
)

// listForcedPair returns the backend selected for the real CPU and the
// generic fallback, in that order.
func listForcedPair(t *testing.T) [2]*registry.OpEntry {
	t.Helper()

	active := registry.Global.Lookup(cpu.DetectFeatures())
	if active == nil {
		t.Fatal("no backend registered for detected CPU")
	}
	generic := registry.Global.Lookup(cpu.Features{ForceGeneric: true})
	if generic == nil {
		t.Fatal("no generic fallback registered")
	}
	return [2]*registry.OpEntry{active, generic}
}
