package minilut

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

// TauVariant identifies which historical AOT grid a miniLUT file was
// written against. The variant is a property of the file, detected from
// the buffer length, never a user choice.
type TauVariant int

const (
	// TauExtended is the current layout with the AOT grid extended to 3.0
	// (27 tau points).
	TauExtended TauVariant = iota
	// TauLegacy is the former layout with the AOT grid capped at 1.5
	// (25 tau points).
	TauLegacy
)

// String returns the maquette's flag name for the variant.
func (v TauVariant) String() string {
	if v == TauExtended {
		return "LUT30"
	}
	return "LUT15"
}

// ErrUnrecognizedShape reports a buffer whose element count matches
// neither known miniLUT layout. There is no recovery: the file is
// ambiguous or corrupted.
var ErrUnrecognizedShape = errors.New("minilut: buffer matches no known layout")

// Element counts for the two known layouts, altitude varying fastest.
const (
	extendedElems = NumBands * NumRtoa * (NumTauLegacy + NumTauExtra) * NumLevels
	legacyElems   = NumBands * NumRtoa * NumTauLegacy * NumLevels

	bytesPerFloat = 4
)

// MiniLUT is a dense [band, rtoa, tau, alt] array of float32 surface
// reflectance values backed by a flat slice in file order (C order,
// altitude fastest). It is immutable once decoded.
type MiniLUT struct {
	Variant TauVariant

	data []float32
	nTau int
}

// Decode reconstructs a MiniLUT from a flat little-endian float32 buffer.
// The tau variant is detected by element count: the Extended layout is
// tried first, then the Legacy layout. A length matching neither (or not
// a whole number of floats) fails with ErrUnrecognizedShape.
func Decode(data []byte) (*MiniLUT, error) {
	if len(data)%bytesPerFloat != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of float32s", ErrUnrecognizedShape, len(data))
	}
	n := len(data) / bytesPerFloat

	var variant TauVariant
	switch n {
	case extendedElems:
		variant = TauExtended
	case legacyElems:
		variant = TauLegacy
	default:
		return nil, fmt.Errorf("%w: got %d elements, want %d (AOT->3.0) or %d (AOT->1.5)",
			ErrUnrecognizedShape, n, extendedElems, legacyElems)
	}

	values := make([]float32, n)
	for i := range values {
		bits := binary.LittleEndian.Uint32(data[i*bytesPerFloat:])
		values[i] = math.Float32frombits(bits)
	}

	return &MiniLUT{
		Variant: variant,
		data:    values,
		nTau:    n / (NumBands * NumRtoa * NumLevels),
	}, nil
}

// Load reads a miniLUT file and decodes it. The file handle is released
// before decoding begins; read failures are wrapped with the path.
func Load(path string) (*MiniLUT, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read miniLUT file %s: %w", path, err)
	}
	lut, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return lut, nil
}

// NumTau returns the length of the tau axis for this file's variant.
func (l *MiniLUT) NumTau() int { return l.nTau }

// At returns the surface reflectance at [band, rtoa, tau, alt].
func (l *MiniLUT) At(band, rtoa, tau, level int) float32 {
	return l.data[((band*NumRtoa+rtoa)*l.nTau+tau)*NumLevels+level]
}

// Slice materialises the 1D view [band, :, tau, level] across the rtoa
// axis, in plotting precision. The returned slice is a copy.
func (l *MiniLUT) Slice(band, tau, level int) []float64 {
	out := make([]float64, NumRtoa)
	for r := range out {
		out[r] = float64(l.At(band, r, tau, level))
	}
	return out
}
