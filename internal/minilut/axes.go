// Package minilut loads and indexes Sentinel-2 miniLUT files: dense 4D
// lookup tables mapping (band, top-of-atmosphere reflectance, aerosol
// optical thickness, altitude) to surface reflectance.
package minilut

import "gonum.org/v1/gonum/floats"

// Sentinel-2 miniLUT dimension constants
// These define the fixed grid the maquette writes miniLUT files against.
const (
	NumBands     = 13 // Sentinel-2 spectral bands B1..B13
	NumRtoa      = 20 // rtoa grid: -0.20 + 0.07*i, i in [0,20)
	NumTauLegacy = 25 // AOT grid up to 1.5 (evenly spaced)
	NumTauExtra  = 2  // extended high-AOT points appended: 2.0, 3.0
	NumLevels    = 4  // altitude levels: 0, 1000, 2000, 3000 m

	rtoaStart = -0.20
	rtoaStep  = 0.07
	tauMax    = 1.5
)

// BandWavelengths maps the zero-based band index to its central wavelength
// in nanometers.
var BandWavelengths = [NumBands]int{
	444, 496, 560, 664, 704, 740, 782, 832, 865, 944, 1373, 1613, 2198,
}

// Axes holds the coordinate values along each miniLUT dimension. It is
// built once at startup by Sentinel2Axes and passed explicitly to the
// loader and plotter; nothing mutates it afterwards.
type Axes struct {
	// Bands holds the central wavelength (nm) per band index.
	Bands []int
	// Rtoa is the top-of-atmosphere reflectance grid (ascending).
	Rtoa []float64
	// TauLegacy is the 25-point AOT grid up to 1.5.
	TauLegacy []float64
	// TauExtended is TauLegacy plus the appended 2.0 and 3.0 points.
	TauExtended []float64
	// Alt is the altitude grid in meters.
	Alt []float64
}

// Sentinel2Axes returns the fixed Sentinel-2 miniLUT axes.
func Sentinel2Axes() Axes {
	rtoa := make([]float64, NumRtoa)
	for i := range rtoa {
		rtoa[i] = rtoaStart + rtoaStep*float64(i)
	}

	legacy := make([]float64, NumTauLegacy)
	floats.Span(legacy, 0, tauMax)

	extended := make([]float64, 0, NumTauLegacy+NumTauExtra)
	extended = append(extended, legacy...)
	extended = append(extended, 2.0, 3.0)

	alt := make([]float64, NumLevels)
	for i := range alt {
		alt[i] = float64(i) * 1000
	}

	return Axes{
		Bands:       BandWavelengths[:],
		Rtoa:        rtoa,
		TauLegacy:   legacy,
		TauExtended: extended,
		Alt:         alt,
	}
}

// Tau returns the AOT axis matching the given variant.
func (a Axes) Tau(v TauVariant) []float64 {
	if v == TauExtended {
		return a.TauExtended
	}
	return a.TauLegacy
}
