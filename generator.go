package calima

// Generator produces surface forms for a lemma under a requested
// feature set.
type Generator struct {
	db *Database
}

// NewGenerator binds a generator to db. The database must have been
// loaded with generation support.
func NewGenerator(db *Database) (*Generator, error) {
	if db == nil || !db.Flags.Generation {
		return nil, &ConfigurationError{Reason: "database does not support generation"}
	}
	return &Generator{db: db}, nil
}

// Generate returns every form of lemma whose merged feature set agrees
// with feats on all requested keys. Features absent from feats are
// unconstrained, so an underspecified request yields all compatible
// forms. Forms come in stem, then prefix, then suffix table order. An
// unknown lemma or an unmatchable feature set yields an empty result,
// not an error.
func (g *Generator) Generate(lemma string, feats FeatureSet) []Analysis {
	var results []Analysis
	for _, stem := range g.db.lemmas[Dediac(lemma)] {
		for _, p := range g.db.prefixes {
			if !compatible(g.db.compatAB, p.category, stem.category) {
				continue
			}
			for _, x := range g.db.suffixes {
				if !compatible(g.db.compatBC, stem.category, x.category) {
					continue
				}
				if !compatible(g.db.compatAC, p.category, x.category) {
					continue
				}
				merged := g.db.mergeMorphemes(p, stem, x)
				if matchesRequested(merged, feats) {
					results = append(results, merged)
				}
			}
		}
	}
	return results
}

// matchesRequested reports whether merged carries every requested
// feature with an equal value.
func matchesRequested(merged Analysis, feats FeatureSet) bool {
	for feat, value := range feats {
		if merged[feat] != value {
			return false
		}
	}
	return true
}
