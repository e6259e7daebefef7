// objinfo is a CLI utility for inspecting Wavefront OBJ meshes.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/lunarforge/glint/internal/engine/model"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "verify":
		cmdVerify(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objinfo - Wavefront OBJ mesh inspector

Usage:
  objinfo <command> [options]

Commands:
  info <file.obj>...     Show vertex, triangle and bounds statistics
  verify <file.obj>...   Parse files and report errors only

Examples:
  objinfo info teapot.obj
  objinfo verify assets/*.obj`)
}

func cmdInfo(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "info requires at least one OBJ file")
		os.Exit(1)
	}

	for _, path := range args {
		data, err := model.LoadOBJ(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		printStats(path, data)
	}
}

func cmdVerify(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "verify requires at least one OBJ file")
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		if _, err := model.LoadOBJ(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func printStats(path string, data *model.MeshData) {
	min := [3]float32{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))}
	max := [3]float32{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))}
	for _, v := range data.Vertices {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  Vertices:  %d\n", len(data.Vertices))
	fmt.Printf("  Indices:   %d\n", len(data.Indices))
	fmt.Printf("  Triangles: %d\n", len(data.Indices)/3)
	if len(data.Vertices) > 0 {
		fmt.Printf("  Bounds:    min(%.3f, %.3f, %.3f) max(%.3f, %.3f, %.3f)\n",
			min[0], min[1], min[2], max[0], max[1], max[2])
	}
}
