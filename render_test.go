package lexcloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustDistribution(t *testing.T, counts map[Term]int) *FrequencyDistribution {
	t.Helper()
	fd, err := NewFrequencyDistribution(counts)
	if err != nil {
		t.Fatalf("NewFrequencyDistribution: %v", err)
	}
	return fd
}

func TestRenderScenario(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "run", POS: POSVerb}:       10,
		{Lemma: "dog", POS: POSNoun}:       2,
		{Lemma: "quickly", POS: POSAdverb}: 2,
	})

	descriptors, err := Render(fd, DefaultStyles, nil, SizeRange{Min: 75, Max: 350})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(descriptors) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(descriptors))
	}

	byText := make(map[string]RenderDescriptor, len(descriptors))
	for _, d := range descriptors {
		byText[d.Text] = d
	}

	// Max frequency maps to the top of the range, min to the bottom.
	assert.Equal(t, 350.0, byText["run"].Size)
	assert.Equal(t, 75.0, byText["dog"].Size)
	assert.Equal(t, 75.0, byText["quickly"].Size)

	// Colors come from the category, not the frequency.
	assert.Equal(t, "#800080", byText["run"].Color)
	assert.Equal(t, "#FFA500", byText["dog"].Color)
	assert.Equal(t, "#32CD32", byText["quickly"].Color)
}

func TestRenderEmptyFilterMeansNoFilter(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "run", POS: POSVerb}: 10,
		{Lemma: "dog", POS: POSNoun}: 2,
	})

	unfiltered, err := Render(fd, DefaultStyles, nil, DefaultSizeRange)
	if err != nil {
		t.Fatalf("Render(nil filter): %v", err)
	}
	emptySet, err := Render(fd, DefaultStyles, []PartOfSpeech{}, DefaultSizeRange)
	if err != nil {
		t.Fatalf("Render(empty filter): %v", err)
	}
	assert.Equal(t, unfiltered, emptySet)
	assert.Len(t, emptySet, 2)
}

func TestRenderFilterRestricts(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "run", POS: POSVerb}:       10,
		{Lemma: "dog", POS: POSNoun}:       2,
		{Lemma: "cat", POS: POSNoun}:       7,
		{Lemma: "blue", POS: POSAdjective}: 4,
	})

	descriptors, err := Render(fd, DefaultStyles, []PartOfSpeech{POSNoun}, DefaultSizeRange)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(descriptors) != 2 {
		t.Fatalf("got %d descriptors, want 2 nouns", len(descriptors))
	}
	for _, d := range descriptors {
		if d.POS != POSNoun {
			t.Errorf("descriptor %q has category %s, want NOUN", d.Text, d.POS)
		}
	}
}

func TestRenderScalesAgainstFilteredRange(t *testing.T) {
	// The size range is derived from the surviving frequencies, so the same
	// term can render at a different size under a different filter.
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "run", POS: POSVerb}: 10,
		{Lemma: "cat", POS: POSNoun}: 7,
		{Lemma: "dog", POS: POSNoun}: 2,
	})

	nouns, err := Render(fd, DefaultStyles, []PartOfSpeech{POSNoun}, SizeRange{Min: 75, Max: 350})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	byText := make(map[string]RenderDescriptor)
	for _, d := range nouns {
		byText[d.Text] = d
	}
	// cat is the max within the filtered view, so it takes the top size
	// even though run's 10 would outrank it globally.
	assert.Equal(t, 350.0, byText["cat"].Size)
	assert.Equal(t, 75.0, byText["dog"].Size)
}

func TestRenderDegenerateDistribution(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "alpha", POS: POSNoun}: 5,
		{Lemma: "beta", POS: POSVerb}:  5,
		{Lemma: "gamma", POS: POSNoun}: 5,
	})

	descriptors, err := Render(fd, DefaultStyles, nil, SizeRange{Min: 75, Max: 350})
	if err != nil {
		t.Fatalf("Render on all-equal frequencies: %v", err)
	}
	for _, d := range descriptors {
		if d.Size != 212.5 {
			t.Errorf("descriptor %q has size %g, want midpoint 212.5", d.Text, d.Size)
		}
	}
}

func TestRenderEmptyDistribution(t *testing.T) {
	fd := mustDistribution(t, nil)
	descriptors, err := Render(fd, DefaultStyles, nil, DefaultSizeRange)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assert.Empty(t, descriptors)
}

func TestRenderFullyFilteredOut(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "run", POS: POSVerb}: 10,
	})
	descriptors, err := Render(fd, DefaultStyles, []PartOfSpeech{POSNoun}, DefaultSizeRange)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assert.Empty(t, descriptors)
}

func TestRenderUnknownCategory(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "run", POS: POSVerb}: 10,
		{Lemma: "dog", POS: POSNoun}: 2,
	})
	// A style table missing NOUN is a configuration mismatch.
	partial := StyleTable{POSVerb: DefaultStyles[POSVerb]}

	_, err := Render(fd, partial, nil, DefaultSizeRange)
	var unknown *UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownCategoryError", err)
	}
	assert.Equal(t, POSNoun, unknown.POS)
	assert.Equal(t, "dog", unknown.Lemma)
}

func TestRenderDeterministicOrder(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "cat", POS: POSNoun}: 3,
		{Lemma: "ant", POS: POSNoun}: 1,
		{Lemma: "bee", POS: POSNoun}: 2,
	})
	descriptors, err := Render(fd, DefaultStyles, nil, DefaultSizeRange)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := make([]string, len(descriptors))
	for i, d := range descriptors {
		got[i] = d.Text
	}
	assert.Equal(t, []string{"ant", "bee", "cat"}, got)
}

func TestRenderInvalidSizeRange(t *testing.T) {
	fd := mustDistribution(t, map[Term]int{
		{Lemma: "run", POS: POSVerb}: 10,
	})
	if _, err := Render(fd, DefaultStyles, nil, SizeRange{Min: 350, Max: 75}); err == nil {
		t.Error("Render with inverted size range should fail")
	}
}
