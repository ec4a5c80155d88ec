// Command mlproof resolves a named proof module from the registry, drives
// it through an interpreter, and writes the three phase-sink output files.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"mlproof/internal/codec"
	"mlproof/internal/diag"
	"mlproof/internal/interp"
	"mlproof/internal/proofreg"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mlproof <module> <binary|pretty> <output_dir> <slice_name> [--optimize]")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 4 {
		usage()
		return 1
	}

	moduleName, format, outputDir, sliceName := args[0], args[1], args[2], args[3]
	optimize := false
	for _, a := range args[4:] {
		if a == "--optimize" {
			optimize = true
			continue
		}
		color.Red("unrecognized argument: %s", a)
		usage()
		return 1
	}

	if format != "binary" && format != "pretty" {
		color.Red("unknown output format %q (want binary or pretty)", format)
		return 1
	}

	ctor, err := proofreg.Lookup(moduleName)
	if err != nil {
		color.Red("%v", err)
		return 1
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		color.Red("creating output directory %s: %v", outputDir, err)
		return 1
	}

	gammaPath, claimPath, proofPath := outputPaths(outputDir, sliceName, format)
	gammaFile, claimFile, proofFile, closeAll, err := createOutputs(gammaPath, claimPath, proofPath)
	if err != nil {
		color.Red("%v", err)
		return 1
	}
	defer closeAll()

	var target interp.Interpreter
	var symbols *codec.SymbolTable
	if format == "binary" {
		symbols = codec.NewSymbolTable()
		serializing, err := interp.NewSerializing(gammaFile, claimFile, proofFile, symbols)
		if err != nil {
			color.Red("%v", err)
			return 1
		}
		target = serializing
	} else {
		target = interp.NewPrettyPrinting(gammaFile, claimFile, proofFile, nil)
	}

	if optimize {
		counts, err := countReuse(ctor)
		if err != nil {
			color.Red("%v", err)
			return 1
		}
		target = interp.NewMemoizing(target, counts)
	}

	builder, err := ctor()
	if err != nil {
		color.Red("%v", err)
		return 1
	}
	if err := builder.ExecuteFull(target); err != nil {
		reportFailure(target, err)
		return 1
	}

	for _, w := range target.Warnings() {
		color.Yellow("warning: %s", w)
	}
	color.Green("wrote %s, %s, %s", gammaPath, claimPath, proofPath)
	return 0
}

// countReuse runs a fresh builder instance through a CountingInterpreter so
// the optimizing pass knows, before emitting a single byte, which pattern
// shapes recur more than once.
func countReuse(ctor proofreg.Constructor) (map[string]int, error) {
	b, err := ctor()
	if err != nil {
		return nil, err
	}
	counting := interp.NewCounting()
	if err := b.ExecuteFull(counting); err != nil {
		return nil, err
	}
	return counting.Counts(), nil
}

func outputPaths(dir, slice, format string) (gamma, claim, proof string) {
	ext := map[string][3]string{
		"binary": {".ml-gamma", ".ml-claim", ".ml-proof"},
		"pretty": {".pretty-gamma", ".pretty-claim", ".pretty-proof"},
	}[format]
	base := filepath.Join(dir, slice)
	return base + ext[0], base + ext[1], base + ext[2]
}

func createOutputs(gammaPath, claimPath, proofPath string) (gamma, claim, proof *os.File, closeAll func(), err error) {
	gamma, err = os.Create(gammaPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("creating %s: %w", gammaPath, err)
	}
	claim, err = os.Create(claimPath)
	if err != nil {
		gamma.Close()
		return nil, nil, nil, nil, fmt.Errorf("creating %s: %w", claimPath, err)
	}
	proof, err = os.Create(proofPath)
	if err != nil {
		gamma.Close()
		claim.Close()
		return nil, nil, nil, nil, fmt.Errorf("creating %s: %w", proofPath, err)
	}
	closeAll = func() {
		gamma.Close()
		claim.Close()
		proof.Close()
	}
	return gamma, claim, proof, closeAll, nil
}

// reportFailure prints err, adding the phase and stack depth the failure
// occurred in when a *diag.Error is anywhere in err's chain. There is no
// source column to point at in an instruction stream, only a stack depth
// and phase.
func reportFailure(target interp.Interpreter, err error) {
	var de *diag.Error
	if errors.As(err, &de) {
		color.Red("%v (phase=%v, stack depth=%d)", err, target.Phase(), len(target.Stack()))
		return
	}
	color.Red("%v", err)
}
