package calima

import "slices"

// WordAnalyzer maps a surface word to candidate analyses.
type WordAnalyzer interface {
	Analyze(word string) []Analysis
}

// FormGenerator maps a lemma plus a feature set to surface forms.
type FormGenerator interface {
	Generate(lemma string, feats FeatureSet) []Analysis
}

// Reinflector rewrites a surface word under a set of feature overrides:
// it analyzes the word, keeps the analyses compatible with the
// overrides, merges each surviving analysis with the overrides and
// regenerates surface forms from the result. It holds no state across
// calls; concurrent use is safe as long as the database, analyzer and
// generator are read-only.
type Reinflector struct {
	db        *Database
	analyzer  WordAnalyzer
	generator FormGenerator
}

// NewReinflector wires a reinflector from a database and bound analyzer
// and generator collaborators. The database must have been loaded with
// generation support.
func NewReinflector(db *Database, analyzer WordAnalyzer, generator FormGenerator) (*Reinflector, error) {
	if db == nil {
		return nil, &ConfigurationError{Reason: "reinflector requires a database"}
	}
	if !db.Flags.Generation {
		return nil, &ConfigurationError{Reason: "database does not support generation"}
	}
	return &Reinflector{db: db, analyzer: analyzer, generator: generator}, nil
}

// Reinflect generates all forms of word compatible with the overrides.
// The outer order of the result follows analyzer output order and the
// inner order follows generator output order per analysis. A word with
// no analyses yields an empty result and no error. Overrides naming a
// feature unknown to the schema or a value outside its domain abort the
// call with UnknownFeatureError or InvalidFeatureValueError before any
// analysis is considered.
func (r *Reinflector) Reinflect(word string, overrides FeatureSet) ([]Analysis, error) {
	analyses := r.analyzer.Analyze(word)
	if len(analyses) == 0 {
		return nil, nil
	}

	if err := r.validateOverrides(overrides); err != nil {
		return nil, err
	}

	hasClitics := false
	for feat := range cliticFeatures {
		if overrides.has(feat) {
			hasClitics = true
			break
		}
	}

	wordDediac := Dediac(word)
	var results []Analysis
	for _, analysis := range analyses {
		if Dediac(analysis[FeatDiac]) != wordDediac {
			continue
		}
		if pos, ok := overrides[FeatPOS]; ok && pos != analysis[FeatPOS] {
			continue
		}
		lemma := LemmaOf(analysis[FeatLex])
		if lex, ok := overrides[FeatLex]; ok && lex != lemma {
			continue
		}

		feats, ok := mergeOverrides(analysis, overrides, hasClitics)
		if !ok {
			continue
		}
		results = append(results, r.generator.Generate(lemma, feats)...)
	}
	return results, nil
}

// validateOverrides checks every override key and value against the
// database schema. It runs once per call, before any analysis is
// touched; failure aborts the whole call.
func (r *Reinflector) validateOverrides(overrides FeatureSet) error {
	for feat, value := range overrides {
		domain, ok := r.db.defines[feat]
		if !ok {
			return &UnknownFeatureError{Feature: feat}
		}
		if domain != nil && !slices.Contains(domain, value) {
			return &InvalidFeatureValueError{Feature: feat, Value: value}
		}
	}
	return nil
}

// mergeOverrides computes the feature set to generate from for one
// analysis. Display and derived features never pass through. form_gen
// and form_num pass only when explicitly overridden. Once a clitic is
// requested, state, case and mood are dropped entirely, since clitic
// attachment changes or voids their applicability. Every remaining
// feature takes the override value when present and the analysis value
// otherwise, with "na" values omitted from the result. Overriding a
// feature whose analysis value is "na" rejects the whole analysis
// (ok == false); the caller moves on to the next analysis.
func mergeOverrides(analysis Analysis, overrides FeatureSet, hasClitics bool) (feats FeatureSet, ok bool) {
	feats = make(FeatureSet, len(analysis))
	for feat, value := range analysis {
		switch {
		case displayFeatures.has(feat):
		case specifiedOnlyFeatures.has(feat) && !overrides.has(feat):
		case hasClitics && cliticRelaxedFeatures.has(feat):
		default:
			if override, present := overrides[feat]; present {
				if !applicable(value) {
					return nil, false
				}
				feats[feat] = override
			} else if applicable(value) {
				feats[feat] = value
			}
		}
	}
	return feats, true
}
