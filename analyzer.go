package calima

// Analyzer maps a surface word to its candidate morphological analyses.
type Analyzer struct {
	db *Database
}

// NewAnalyzer binds an analyzer to db. The database must have been
// loaded with analysis support.
func NewAnalyzer(db *Database) (*Analyzer, error) {
	if db == nil || !db.Flags.Analysis {
		return nil, &ConfigurationError{Reason: "database does not support analysis"}
	}
	return &Analyzer{db: db}, nil
}

// Analyze returns all analyses of word. The word is dediacritized and
// split at every rune boundary into prefix+stem+suffix (either affix
// may be empty); each segment triple found in the morpheme tables and
// admitted by the three compatibility tables yields one analysis.
// Results come in split order, then table order, so repeated calls
// return the same sequence. An empty result means the word is not
// covered by the database; it is not an error.
func (a *Analyzer) Analyze(word string) []Analysis {
	runes := []rune(Dediac(word))

	var results []Analysis
	for i := 0; i <= len(runes); i++ {
		prefixes := a.db.prefixIndex[string(runes[:i])]
		if len(prefixes) == 0 {
			continue
		}
		for j := i; j <= len(runes); j++ {
			stems := a.db.stemIndex[string(runes[i:j])]
			if len(stems) == 0 {
				continue
			}
			suffixes := a.db.suffixIndex[string(runes[j:])]
			if len(suffixes) == 0 {
				continue
			}

			for _, p := range prefixes {
				for _, s := range stems {
					if !compatible(a.db.compatAB, p.category, s.category) {
						continue
					}
					for _, x := range suffixes {
						if !compatible(a.db.compatBC, s.category, x.category) {
							continue
						}
						if !compatible(a.db.compatAC, p.category, x.category) {
							continue
						}
						results = append(results, a.db.mergeMorphemes(p, s, x))
					}
				}
			}
		}
	}
	return results
}
