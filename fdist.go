package lexcloud

import (
	"sort"
	"strings"
)

// Token is a single annotated token from the annotation source: the
// normalized lemma plus the category the service assigned to it.
type Token struct {
	Lemma string
	POS   PartOfSpeech
}

// Aggregate builds a frequency distribution from a stream of annotated
// tokens. Punctuation tokens, empty lemmas, and stopword lemmas
// (case-insensitive) are excluded before counting. When topN > 0 only the
// topN most frequent terms are kept; ties are broken by lemma so the cut is
// deterministic. topN <= 0 keeps everything.
func Aggregate(tokens []Token, stopwords []string, topN int) (*FrequencyDistribution, error) {
	stop := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		stop[strings.ToLower(w)] = true
	}

	counts := make(map[Term]int)
	for _, tok := range tokens {
		if tok.Lemma == "" || tok.POS == POSPunctuation {
			continue
		}
		if stop[strings.ToLower(tok.Lemma)] {
			continue
		}
		counts[Term{Lemma: tok.Lemma, POS: tok.POS}]++
	}

	if topN > 0 && len(counts) > topN {
		type entry struct {
			term  Term
			count int
		}
		entries := make([]entry, 0, len(counts))
		for t, n := range counts {
			entries = append(entries, entry{term: t, count: n})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].count != entries[j].count {
				return entries[i].count > entries[j].count
			}
			if entries[i].term.Lemma != entries[j].term.Lemma {
				return entries[i].term.Lemma < entries[j].term.Lemma
			}
			return entries[i].term.POS < entries[j].term.POS
		})
		counts = make(map[Term]int, topN)
		for _, e := range entries[:topN] {
			counts[e.term] = e.count
		}
	}

	return NewFrequencyDistribution(counts)
}
