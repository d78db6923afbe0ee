// Package plotview renders miniLUT diagnostic plots: rse = f(rtoa) curves
// for a sampled set of AOT values at a fixed band and altitude level, with
// a strict-monotonicity check per curve.
package plotview

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jerome-colin/miniLUT-viewer/internal/minilut"
)

// Default AOT sampling indices. The curated subsets span low AOT through
// the top of each variant's grid; the Extended subset includes the two
// appended high-AOT points.
var (
	extendedSampling = []int{0, 8, 16, 24, 25, 26}
	legacySampling   = []int{0, 8, 16, 24}
)

// Params selects what to render and where.
type Params struct {
	// Band is the zero-based band index, valid in [0, NumBands).
	Band int
	// Level is the zero-based altitude level index, valid in [0, NumLevels).
	Level int
	// ShowAll plots every AOT index instead of the curated subset.
	ShowAll bool
	// OutPath is the PNG destination.
	OutPath string
	// Show, when non-nil, is called with OutPath after a successful save
	// and may block until an interactive viewer is dismissed. Headless
	// callers leave it nil.
	Show func(path string) error
}

// Result reports what Render produced.
type Result struct {
	// OutputPath is the PNG destination that was attempted.
	OutputPath string
	// Saved is false when the figure could not be written (non-fatal).
	Saved bool
	// NonMonotone lists the AOT values whose rse = f(rtoa) slice failed
	// the strict monotonicity check, in plotting order.
	NonMonotone []float64
}

// Render extracts the [band, :, t, level] slices for the sampled AOT
// indices, draws them against the rtoa axis with a dashed identity
// baseline, checks each slice for strict monotonicity, and saves the
// figure. Out-of-range band or level indices are usage errors; a failed
// save is downgraded to a warning.
func Render(ax minilut.Axes, lut *minilut.MiniLUT, params Params) (*Result, error) {
	if params.Band < 0 || params.Band >= len(ax.Bands) {
		return nil, fmt.Errorf("band index %d out of range [0,%d)", params.Band, len(ax.Bands))
	}
	if params.Level < 0 || params.Level >= len(ax.Alt) {
		return nil, fmt.Errorf("level index %d out of range [0,%d)", params.Level, len(ax.Alt))
	}

	tau := ax.Tau(lut.Variant)
	lo, hi := floats.Min(ax.Rtoa), floats.Max(ax.Rtoa)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("rse = f(rtoa), band %d nm, level = %6.1f m",
		ax.Bands[params.Band], ax.Alt[params.Level])
	p.X.Label.Text = "rtoa"
	p.Y.Label.Text = "rse"
	p.X.Min, p.X.Max = lo, hi
	p.Y.Min, p.Y.Max = lo, hi

	// Identity baseline y = x across the plotted domain.
	ident, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return nil, fmt.Errorf("failed to build identity line: %w", err)
	}
	ident.Color = color.Black
	ident.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(ident)

	sampling := tauSampling(lut.Variant, lut.NumTau(), params.ShowAll)
	colors := generateColors(len(sampling))

	res := &Result{OutputPath: params.OutPath, Saved: true}

	for i, t := range sampling {
		slice := lut.Slice(params.Band, t, params.Level)

		pts := make(plotter.XYs, len(slice))
		for r, v := range slice {
			pts[r] = plotter.XY{X: ax.Rtoa[r], Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to build curve for AOT=%4.2f: %w", tau[t], err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("AOT=%4.2f", tau[t]), line)

		if !minilut.IsMonotoneIncreasing(slice) {
			log.Printf("WARNING: non-monotone fitting for AOT=%4.2f", tau[t])
			res.NonMonotone = append(res.NonMonotone, tau[t])
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 6*vg.Inch, params.OutPath); err != nil {
		log.Printf("WARNING: write permission missing, couldn't save figure: %v", err)
		res.Saved = false
	}

	if params.Show != nil {
		if !res.Saved {
			log.Printf("WARNING: figure was not saved, skipping interactive display")
		} else if err := params.Show(params.OutPath); err != nil {
			log.Printf("WARNING: interactive display failed: %v", err)
		}
	}

	return res, nil
}

// tauSampling returns the AOT indices to plot: every index when showAll
// is set, otherwise the variant's curated subset.
func tauSampling(v minilut.TauVariant, nTau int, showAll bool) []int {
	if showAll {
		all := make([]int, nTau)
		for i := range all {
			all[i] = i
		}
		return all
	}
	if v == minilut.TauExtended {
		return extendedSampling
	}
	return legacySampling
}

// OutputName derives the PNG name from the input file name: the base name
// minus its extension, plus the one-based band number and zero-based
// level. The file is written to the working directory regardless of where
// the input lives.
func OutputName(inputPath string, band, level int) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_B%d_L%d.png", stem, band+1, level)
}

// generateColors creates a palette of distinct colors for the AOT curves.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
