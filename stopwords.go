package lexcloud

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Stopwords holds per-language exclusion lists, keyed by ISO 639-2/T
// three-letter language code.
type Stopwords map[string][]string

// LoadStopwords reads a YAML file mapping language code → word list.
func LoadStopwords(path string) (Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stopwords file %s: %w", path, err)
	}
	var sw Stopwords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, fmt.Errorf("parsing stopwords file %s: %w", path, err)
	}
	return sw, nil
}

// Languages returns the sorted language codes with a loaded list.
func (s Stopwords) Languages() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// For returns the stopword list for lang. A language with no loaded list
// yields nil, which downstream aggregation treats as "exclude nothing".
func (s Stopwords) For(lang string) []string {
	return s[lang]
}
