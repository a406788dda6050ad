package lexcloud

import (
	"errors"
	"fmt"
)

// SizeRange is the target display-magnitude range for rendered terms, on
// whatever scale the output format uses (font-size percent for the HTML
// formatter).
type SizeRange struct {
	Min float64
	Max float64
}

// DefaultSizeRange spans font-size 75% to 350%.
var DefaultSizeRange = SizeRange{Min: 75, Max: 350}

// Midpoint returns the center of the range.
func (r SizeRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// RenderDescriptor describes one rendered term: the text to draw, the color
// encoding its category, and the display size derived from its frequency.
// POS and Frequency are carried along so a formatter can label the term
// without re-consulting the distribution.
type RenderDescriptor struct {
	Text      string
	POS       PartOfSpeech
	Color     string
	Size      float64
	Frequency int
}

// UnknownCategoryError reports a surviving term whose category has no entry
// in the style table. This indicates a configuration mismatch between the
// annotation source and the table and is surfaced rather than papered over.
type UnknownCategoryError struct {
	Lemma string
	POS   PartOfSpeech
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no style entry for category %q (lemma %q)", e.POS, e.Lemma)
}

// Render turns a frequency distribution into an ordered sequence of render
// descriptors.
//
// allowed is a category whitelist: terms whose tag is not a member are
// dropped. A nil or empty whitelist means "no filter" — all terms survive.
// That is a deliberate, documented choice (the natural reading of "no filter
// specified"), not a fallthrough on emptiness.
//
// Sizes are scaled against the surviving terms' frequency range, so the same
// term can render at a different size under a different filter: a filtered
// view re-emphasizes relative weight within what is shown. The minimum
// surviving frequency maps to sizes.Min and the maximum to sizes.Max. When
// every surviving frequency is identical the projection is degenerate and
// every term falls back to the midpoint of the size range.
//
// An empty or fully-filtered-out distribution yields an empty sequence and
// no error. Descriptors are emitted in the distribution's iteration order,
// sorted by (lemma, category).
func Render(fd *FrequencyDistribution, styles StyleTable, allowed []PartOfSpeech, sizes SizeRange) ([]RenderDescriptor, error) {
	if sizes.Min >= sizes.Max {
		return nil, fmt.Errorf("invalid size range: min %g must be below max %g", sizes.Min, sizes.Max)
	}

	allow := make(map[PartOfSpeech]bool, len(allowed))
	for _, p := range allowed {
		allow[p] = true
	}

	var survivors []Term
	for _, t := range fd.Terms() {
		if len(allow) == 0 || allow[t.POS] {
			survivors = append(survivors, t)
		}
	}
	if len(survivors) == 0 {
		return []RenderDescriptor{}, nil
	}

	frequencies := make([]float64, len(survivors))
	for i, t := range survivors {
		frequencies[i] = float64(fd.Count(t))
	}

	size, err := Rescale(frequencies, []float64{sizes.Min, sizes.Max})
	var degenerate *DegenerateRangeError
	switch {
	case errors.As(err, &degenerate):
		// All surviving frequencies are equal; render everything at the
		// midpoint of the target range.
		mid := sizes.Midpoint()
		size = func(float64) float64 { return mid }
	case err != nil:
		return nil, err
	}

	descriptors := make([]RenderDescriptor, 0, len(survivors))
	for _, t := range survivors {
		style, ok := styles[t.POS]
		if !ok {
			return nil, &UnknownCategoryError{Lemma: t.Lemma, POS: t.POS}
		}
		freq := fd.Count(t)
		descriptors = append(descriptors, RenderDescriptor{
			Text:      t.Lemma,
			POS:       t.POS,
			Color:     style.Hex,
			Size:      size(float64(freq)),
			Frequency: freq,
		})
	}
	return descriptors, nil
}
