package color

import (
	rferrors "github.com/pirrtools/richframe/internal/errors"
)

// Sample returns the hex colour of a colormap at position t in [0,1].
func (c Colormap) Sample(t float64) string {
	return Hex(c.At(clamp01(t)))
}

// SamplePositions returns count evenly spaced positions over [0,1]. A single
// sample sits at the midpoint.
func SamplePositions(count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{0.5}
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = float64(i) / float64(count-1)
	}
	return out
}

// GradientPalette samples the named colormap count times and returns each
// colour as a background directive ("on #rrggbb"). For an unknown name it
// returns count empty strings together with the lookup error.
func GradientPalette(name string, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	cm, err := Lookup(name)
	if err != nil {
		return make([]string, count), err
	}
	out := make([]string, count)
	for i, t := range SamplePositions(count) {
		out[i] = "on " + cm.Sample(t)
	}
	return out, nil
}

// SafeGradientPalette is GradientPalette with the error downgraded to a
// logged warning.
func SafeGradientPalette(name string, count int) ([]string, *rferrors.Warning) {
	fallback := make([]string, max(count, 0))
	return rferrors.Attempt(rferrors.ErrorTypeGradient, "color", "gradient palette "+name, fallback, func() ([]string, error) {
		return GradientPalette(name, count)
	})
}
