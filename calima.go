// Package calima implements the CALIMA Star morphological engine for
// Arabic: a database of prefix, stem and suffix morphemes with
// compatibility tables, an analyzer mapping surface words to candidate
// analyses, a generator mapping a lemma plus a feature set to surface
// forms, and a reinflector that rewrites a word under a set of feature
// overrides.
package calima

import (
	"fmt"
	"strings"
)

// DatabaseFlags records which operations a loaded database supports.
type DatabaseFlags struct {
	Analysis   bool
	Generation bool
}

// morpheme is one entry of the prefix, stem or suffix table.
type morpheme struct {
	// surface is the undiacritized surface form used for lookup.
	surface string
	// category is the compatibility-table category.
	category string
	// feats holds the features this morpheme contributes.
	feats Analysis
}

// Database holds a loaded morphology database. All fields are read-only
// after LoadDatabase returns.
type Database struct {
	// defines maps feature name → admissible values.
	// A nil value slice means the feature's domain is open.
	defines map[string][]string

	// defaults maps part-of-speech → feature defaults merged under
	// every reading with that pos.
	defaults map[string]Analysis

	// prefixes, stems and suffixes hold morpheme entries in file order.
	prefixes []*morpheme
	stems    []*morpheme
	suffixes []*morpheme

	// prefixIndex, stemIndex and suffixIndex map undiacritized surface
	// → entries for segmentation lookup.
	prefixIndex map[string][]*morpheme
	stemIndex   map[string][]*morpheme
	suffixIndex map[string][]*morpheme

	// lemmas maps Dediac(LemmaOf(lex)) → stem entries.
	lemmas map[string][]*morpheme

	// compatAB, compatBC and compatAC are the prefix–stem, stem–suffix
	// and prefix–suffix category compatibility tables.
	compatAB map[string]map[string]bool
	compatBC map[string]map[string]bool
	compatAC map[string]map[string]bool

	// Flags records the modes this database was opened in.
	Flags DatabaseFlags
}

// LoadDatabase reads the database file at path. mode selects the
// supported operations: it may contain 'a' (analysis), 'g' (generation)
// or 'r' (reinflection, which implies both).
func LoadDatabase(path, mode string) (*Database, error) {
	db := &Database{
		defines:     make(map[string][]string),
		defaults:    make(map[string]Analysis),
		prefixIndex: make(map[string][]*morpheme),
		stemIndex:   make(map[string][]*morpheme),
		suffixIndex: make(map[string][]*morpheme),
		lemmas:      make(map[string][]*morpheme),
		compatAB:    make(map[string]map[string]bool),
		compatBC:    make(map[string]map[string]bool),
		compatAC:    make(map[string]map[string]bool),
	}

	if mode == "" {
		return nil, fmt.Errorf("empty database mode")
	}
	for _, r := range mode {
		switch r {
		case 'a':
			db.Flags.Analysis = true
		case 'g':
			db.Flags.Generation = true
		case 'r':
			db.Flags.Analysis = true
			db.Flags.Generation = true
		default:
			return nil, fmt.Errorf("unknown database mode %q", string(r))
		}
	}

	if err := db.load(path); err != nil {
		return nil, err
	}
	return db, nil
}

// Defines returns the feature schema: feature name → admissible values,
// where a nil slice means the domain is open.
func (db *Database) Defines() map[string][]string {
	out := make(map[string][]string, len(db.defines))
	for feat, values := range db.defines {
		out[feat] = values
	}
	return out
}

// addPrefix inserts a prefix entry into the table and its surface index.
func (db *Database) addPrefix(m *morpheme) {
	db.prefixes = append(db.prefixes, m)
	db.prefixIndex[m.surface] = append(db.prefixIndex[m.surface], m)
}

// addStem inserts a stem entry into the table, its surface index and
// the lemma index used for generation.
func (db *Database) addStem(m *morpheme) {
	db.stems = append(db.stems, m)
	db.stemIndex[m.surface] = append(db.stemIndex[m.surface], m)
	if lemma := Dediac(LemmaOf(m.feats[FeatLex])); lemma != "" {
		db.lemmas[lemma] = append(db.lemmas[lemma], m)
	}
}

// addSuffix inserts a suffix entry into the table and its surface index.
func (db *Database) addSuffix(m *morpheme) {
	db.suffixes = append(db.suffixes, m)
	db.suffixIndex[m.surface] = append(db.suffixIndex[m.surface], m)
}

// compatible reports whether categories a and b appear as a pair in table.
func compatible(table map[string]map[string]bool, a, b string) bool {
	return table[a][b]
}

// mergeMorphemes computes the full feature set of one
// prefix+stem+suffix reading. Defaults for the stem's part of speech
// come first, then stem, prefix and suffix values in that order; diac
// is concatenated in surface order and bw is joined with '+'.
func (db *Database) mergeMorphemes(prefix, stem, suffix *morpheme) Analysis {
	merged := make(Analysis)
	for feat, value := range db.defaults[stem.feats[FeatPOS]] {
		merged[feat] = value
	}
	for _, m := range []*morpheme{stem, prefix, suffix} {
		for feat, value := range m.feats {
			if feat == FeatDiac || feat == FeatBW {
				continue
			}
			merged[feat] = value
		}
	}
	merged[FeatDiac] = prefix.feats[FeatDiac] + stem.feats[FeatDiac] + suffix.feats[FeatDiac]
	merged[FeatBW] = joinBW(prefix.feats[FeatBW], stem.feats[FeatBW], suffix.feats[FeatBW])
	return merged
}

// joinBW concatenates non-empty Buckwalter segments with '+'.
func joinBW(segments ...string) string {
	var kept []string
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "+")
}
