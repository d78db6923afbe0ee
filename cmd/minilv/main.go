// Command minilv plots rse = f(rtoa) diagnostic curves from a Sentinel-2
// miniLUT binary file, one curve per sampled AOT value, and warns when a
// curve is not strictly monotone.
//
// Usage:
//
//	minilv [-v] [-b BAND] [-z LEVEL] [-a] FILE
//
// Example:
//
//	minilv -v -b 1 -z 0 21LWK_20170917_S2A_L1Csimu_toa_240m.minilut
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jerome-colin/miniLUT-viewer/internal/display"
	"github.com/jerome-colin/miniLUT-viewer/internal/minilut"
	"github.com/jerome-colin/miniLUT-viewer/internal/plotview"
	"github.com/jerome-colin/miniLUT-viewer/internal/version"
)

var (
	verbose     = flag.Bool("v", false, "Set verbosity to INFO level + interactive plotting")
	band        = flag.Int("b", 0, "Integer band index (B1 is 0)")
	level       = flag.Int("z", 0, "Integer altitude level (0m is 0)")
	showAll     = flag.Bool("a", false, "Show all AOT values of miniLUT")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

func init() {
	// Long-form aliases for the short flags.
	flag.BoolVar(verbose, "verbose", false, "Set verbosity to INFO level + interactive plotting")
	flag.IntVar(band, "band", 0, "Integer band index (B1 is 0)")
	flag.IntVar(level, "level", 0, "Integer altitude level (0m is 0)")
	flag.BoolVar(showAll, "all", false, "Show all AOT values of miniLUT")
}

// checkIndexBounds validates the band and level arguments against the
// axes. Violations are usage errors, reported before any file access.
func checkIndexBounds(ax minilut.Axes, band, level int) error {
	if band < 0 || band >= len(ax.Bands) {
		return errors.New("Band number out of range")
	}
	if level < 0 || level >= len(ax.Alt) {
		return errors.New("Level out of range")
	}
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] [-b BAND] [-z LEVEL] [-a] FILE\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("minilv %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	file := flag.Arg(0)

	ax := minilut.Sentinel2Axes()

	// Usage errors are reported before any file access.
	if err := checkIndexBounds(ax, *band, *level); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}

	if *verbose {
		log.Printf("INFO: working with band B%d", *band+1)
	}

	lut, err := minilut.Load(file)
	if err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
	if lut.Variant == minilut.TauLegacy {
		log.Printf("WARNING: bad minilut dimensions, trying with AOT->1.5")
	}
	if *verbose {
		log.Printf("INFO: successfully opened %s", file)
	}

	params := plotview.Params{
		Band:    *band,
		Level:   *level,
		ShowAll: *showAll,
		OutPath: plotview.OutputName(file, *band, *level),
	}
	if *verbose {
		params.Show = display.Show
	}

	if _, err := plotview.Render(ax, lut, params); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}

	log.Printf("INFO: Done...")
}
