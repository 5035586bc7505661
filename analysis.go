package calima

import "strings"

// Analysis is one morphological reading of a word: a flat mapping from
// feature name to value. Analyses always carry at least the diac, lex
// and pos features. The literal value "na" marks a feature that does
// not apply to the reading.
type Analysis map[string]string

// FeatureSet is a set of feature/value pairs, either supplied by a
// caller as overrides or computed for generation.
type FeatureSet map[string]string

// has reports whether feat is present in the set.
func (f FeatureSet) has(feat string) bool {
	_, ok := f[feat]
	return ok
}

// Feature names with a fixed meaning across the engine.
const (
	FeatDiac  = "diac"
	FeatLex   = "lex"
	FeatPOS   = "pos"
	FeatBW    = "bw"
	FeatGloss = "gloss"
)

// ValueNotApplicable is the sentinel value analyses use for a feature
// that does not apply to the lexeme or reading. It is part of the
// database format; internal code tests it only through applicable.
const ValueNotApplicable = "na"

// applicable reports whether an analysis value is a real value rather
// than the "na" sentinel.
func applicable(value string) bool {
	return value != ValueNotApplicable
}

// featureSet is a fixed set of feature names.
type featureSet map[string]bool

func newFeatureSet(names ...string) featureSet {
	s := make(featureSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

func (s featureSet) has(name string) bool {
	return s[name]
}

// cliticFeatures are the proclitic/enclitic slot features. Requesting
// any of them relaxes the cliticRelaxedFeatures constraints.
var cliticFeatures = newFeatureSet("prc0", "prc1", "prc2", "prc3", "enc0")

// displayFeatures are display or derived features that never
// participate in generation.
var displayFeatures = newFeatureSet(
	"diac", "lex", "bw", "gloss", "source", "stem", "stemcat", "lmm",
	"dediac", "caphi", "catib6", "ud", "d3seg", "atbseg", "d2seg",
	"d1seg", "d1tok", "d2tok", "atbtok", "d3tok", "root", "pattern",
	"freq", "pos_prob", "stemgloss",
)

// specifiedOnlyFeatures pass through to generation only when the caller
// explicitly overrides them; otherwise the generator infers a default.
var specifiedOnlyFeatures = newFeatureSet("form_gen", "form_num")

// cliticRelaxedFeatures are voided by clitic attachment: once a clitic
// is requested they are dropped from generation entirely.
var cliticRelaxedFeatures = newFeatureSet("stt", "cas", "mod")

// LemmaOf derives the lemma from a lexeme identifier: the leading
// segment before the first '-' or '_'.
func LemmaOf(lex string) string {
	if i := strings.IndexAny(lex, "-_"); i >= 0 {
		return lex[:i]
	}
	return lex
}
