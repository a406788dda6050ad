package lexcloud

import "strings"

// PartOfSpeech is a Universal-Dependencies-style category tag for a term.
type PartOfSpeech string

const (
	POSAdjective     PartOfSpeech = "ADJ"
	POSAdposition    PartOfSpeech = "ADP"
	POSAdverb        PartOfSpeech = "ADV"
	POSAuxiliary     PartOfSpeech = "AUX"
	POSConjunction   PartOfSpeech = "CONJ"
	POSDeterminer    PartOfSpeech = "DET"
	POSInterjection  PartOfSpeech = "INTJ"
	POSNoun          PartOfSpeech = "NOUN"
	POSNumeral       PartOfSpeech = "NUM"
	POSParticle      PartOfSpeech = "PART"
	POSPronoun       PartOfSpeech = "PRON"
	POSProperNoun    PartOfSpeech = "PROPN"
	POSPunctuation   PartOfSpeech = "PUNCT"
	POSSubordinating PartOfSpeech = "SCONJ"
	POSSymbol        PartOfSpeech = "SYM"
	POSVerb          PartOfSpeech = "VERB"
	POSOther         PartOfSpeech = "X"
)

// posNames maps each tag to its human-readable name.
var posNames = map[PartOfSpeech]string{
	POSAdjective:     "Adjective",
	POSAdposition:    "Adposition",
	POSAdverb:        "Adverb",
	POSAuxiliary:     "Auxiliary verb",
	POSConjunction:   "Coordinating conjunction",
	POSDeterminer:    "Determiner",
	POSInterjection:  "Interjection",
	POSNoun:          "Noun",
	POSNumeral:       "Numeral",
	POSParticle:      "Particle",
	POSPronoun:       "Pronoun",
	POSProperNoun:    "Proper noun",
	POSPunctuation:   "Punctuation",
	POSSubordinating: "Subordinating conjunction",
	POSSymbol:        "Symbol",
	POSVerb:          "Verb",
	POSOther:         "Other",
}

// AllPartsOfSpeech lists every known tag in display order.
var AllPartsOfSpeech = []PartOfSpeech{
	POSAdjective, POSAdposition, POSAdverb, POSAuxiliary, POSConjunction,
	POSDeterminer, POSInterjection, POSNoun, POSNumeral, POSParticle,
	POSPronoun, POSProperNoun, POSPunctuation, POSSubordinating, POSSymbol,
	POSVerb, POSOther,
}

// Name returns the human-readable name for the tag, or "Unknown" if the tag
// is not a member of the closed set.
func (p PartOfSpeech) Name() string {
	if name, ok := posNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Known reports whether p is a member of the closed tag set.
func (p PartOfSpeech) Known() bool {
	_, ok := posNames[p]
	return ok
}

// ParsePartOfSpeech maps a raw tag string (case-insensitive) onto the closed
// set. The second result reports whether the tag was recognized; callers that
// consume annotation-service output typically fold unrecognized tags into
// POSOther.
func ParsePartOfSpeech(s string) (PartOfSpeech, bool) {
	p := PartOfSpeech(strings.ToUpper(strings.TrimSpace(s)))
	if p.Known() {
		return p, true
	}
	return POSOther, false
}

// Style pairs a display color's hex value with its human-readable name.
type Style struct {
	Hex  string
	Name string
}

// StyleTable maps each category tag to its display style.
type StyleTable map[PartOfSpeech]Style

// DefaultStyles is the built-in category → color table. It is constructed
// once at startup and never mutated; treat it as read-only.
var DefaultStyles = StyleTable{
	POSAdjective:     {Hex: "#4E8975", Name: "seagreen"},
	POSAdposition:    {Hex: "#A52A2A", Name: "brown"},
	POSAdverb:        {Hex: "#32CD32", Name: "limegreen"},
	POSAuxiliary:     {Hex: "#0000FF", Name: "blue"},
	POSConjunction:   {Hex: "#ff4500", Name: "orangered"},
	POSDeterminer:    {Hex: "#c0c0c0", Name: "silver"},
	POSInterjection:  {Hex: "#493D26", Name: "mocha"},
	POSNoun:          {Hex: "#FFA500", Name: "orange"},
	POSNumeral:       {Hex: "#6698FF", Name: "skyblue"},
	POSParticle:      {Hex: "#FF00FF", Name: "magenta"},
	POSPronoun:       {Hex: "#FF0000", Name: "red"},
	POSProperNoun:    {Hex: "#8D38C9", Name: "violet"},
	POSPunctuation:   {Hex: "#008080", Name: "teal"},
	POSSubordinating: {Hex: "#EDDA74", Name: "goldenrod"},
	POSSymbol:        {Hex: "#808000", Name: "olive"},
	POSVerb:          {Hex: "#800080", Name: "purple"},
	POSOther:         {Hex: "#000000", Name: "black"},
}
