package lexcloud

import (
	"fmt"
	"sort"
)

// Term identifies a lexical unit: a normalized lemma plus its category tag.
// Terms are value types; two terms are equal iff both fields are equal.
type Term struct {
	Lemma string
	POS   PartOfSpeech
}

func (t Term) String() string {
	return t.Lemma + "/" + string(t.POS)
}

// FrequencyDistribution counts occurrences per distinct term. Counts are
// validated at construction; rendering code may assume every count is
// non-negative and every tag is a member of the closed set.
type FrequencyDistribution struct {
	counts map[Term]int
}

// NewFrequencyDistribution validates counts and wraps them in a
// FrequencyDistribution. Negative counts and unknown category tags are
// rejected here, once, so downstream passes need no per-entry checks.
// An empty map is valid and yields an empty render.
func NewFrequencyDistribution(counts map[Term]int) (*FrequencyDistribution, error) {
	fd := &FrequencyDistribution{counts: make(map[Term]int, len(counts))}
	for t, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("negative count %d for term %s", n, t)
		}
		if !t.POS.Known() {
			return nil, fmt.Errorf("unknown category %q for lemma %q", t.POS, t.Lemma)
		}
		fd.counts[t] = n
	}
	return fd, nil
}

// Len returns the number of distinct terms.
func (fd *FrequencyDistribution) Len() int {
	return len(fd.counts)
}

// Count returns the frequency recorded for t (0 if absent).
func (fd *FrequencyDistribution) Count(t Term) int {
	return fd.counts[t]
}

// Terms returns all terms sorted by (lemma, category). Map iteration order is
// random in Go, so every pass that walks the distribution goes through this
// accessor to keep output reproducible.
func (fd *FrequencyDistribution) Terms() []Term {
	terms := make([]Term, 0, len(fd.counts))
	for t := range fd.counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Lemma != terms[j].Lemma {
			return terms[i].Lemma < terms[j].Lemma
		}
		return terms[i].POS < terms[j].POS
	})
	return terms
}
