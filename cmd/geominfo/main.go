// Command geominfo prints the active kernel backend, the detected CPU
// features, and the memory layout of the geometry types.
//
// Usage:
//
//	geominfo [flags]
//
// Examples:
//
//	geominfo
//	geominfo -backends
//	geominfo -layout
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"unsafe"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-geom/f32"
	"github.com/cwbudde/algo-geom/internal/lanes"
	"github.com/cwbudde/algo-geom/internal/lanes/registry"
)

func main() {
	backends := flag.Bool("backends", false, "list all registered kernel backends")
	layout := flag.Bool("layout", false, "print type sizes only")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: geominfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the active kernel backend, CPU features and type layout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch {
	case *backends:
		printBackends()
	case *layout:
		printLayout()
	default:
		printSummary()
		fmt.Println()
		printLayout()
	}
}

func printSummary() {
	features := cpu.DetectFeatures()

	fmt.Printf("backend:      %s\n", lanes.Implementation())
	fmt.Printf("architecture: %s\n", features.Architecture)
	fmt.Printf("sse2:         %v\n", features.HasSSE2)
	fmt.Printf("avx2:         %v\n", features.HasAVX2)
	fmt.Printf("neon:         %v\n", features.HasNEON)
}

func printBackends() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tLevel\tPriority\tActive\n")
	fmt.Fprintf(tw, "----\t-----\t--------\t------\n")

	active := lanes.Implementation()
	for _, e := range registry.Global.ListEntries() {
		marker := ""
		if e.Name == active {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, levelName(e.SIMDLevel), e.Priority, marker)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printLayout() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Type\tSize [bytes]\tAlign [bytes]\n")
	fmt.Fprintf(tw, "----\t------------\t-------------\n")

	rows := []struct {
		name  string
		size  uintptr
		align uintptr
	}{
		{"Vec2", unsafe.Sizeof(f32.Vec2{}), unsafe.Alignof(f32.Vec2{})},
		{"Vec3", unsafe.Sizeof(f32.Vec3{}), unsafe.Alignof(f32.Vec3{})},
		{"Vec4", unsafe.Sizeof(f32.Vec4{}), unsafe.Alignof(f32.Vec4{})},
		{"Quat", unsafe.Sizeof(f32.Quat{}), unsafe.Alignof(f32.Quat{})},
		{"Mat2", unsafe.Sizeof(f32.Mat2{}), unsafe.Alignof(f32.Mat2{})},
		{"Mat3", unsafe.Sizeof(f32.Mat3{}), unsafe.Alignof(f32.Mat3{})},
		{"Mat4", unsafe.Sizeof(f32.Mat4{}), unsafe.Alignof(f32.Mat4{})},
		{"Vec2Mask", unsafe.Sizeof(f32.Vec2Mask{}), unsafe.Alignof(f32.Vec2Mask{})},
		{"Vec3Mask", unsafe.Sizeof(f32.Vec3Mask{}), unsafe.Alignof(f32.Vec3Mask{})},
		{"Vec4Mask", unsafe.Sizeof(f32.Vec4Mask{}), unsafe.Alignof(f32.Vec4Mask{})},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", r.name, r.size, r.align)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func levelName(level cpu.SIMDLevel) string {
	switch level {
	case cpu.SIMDNone:
		return "none"
	case cpu.SIMDSSE2:
		return "sse2"
	case cpu.SIMDAVX2:
		return "avx2"
	case cpu.SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}
