package calima

import (
	"errors"
	"slices"
	"testing"
)

const tinyDB = "testdata/tiny.db"

// Surface forms covered by the tiny database.
const (
	kataba   = "كَتَبَ"   // he wrote
	katabat  = "كَتَبَتْ" // she wrote
	kutiba   = "كُتِبَ"   // it was written
	kutibat  = "كُتِبَتْ" // it (f) was written
	kitab    = "كِتاب"   // book
	kutub    = "كُتُب"   // books
	kitabuhu = "كِتابُهُ" // his book
	waKataba = "وَكَتَبَ"  // and he wrote
	waKutiba = "وَكُتِبَ"  // and it was written
	waKutub  = "وَكُتُب"   // and books
	waKitab  = "وَكِتاب"  // and a book
	lemmaKTB = "كَتَب"    // verb lemma (lex head)
)

func loadTiny(t *testing.T) *Database {
	t.Helper()
	db, err := LoadDatabase(tinyDB, "r")
	if err != nil {
		t.Fatalf("LoadDatabase(%q): %v", tinyDB, err)
	}
	return db
}

func diacs(forms []Analysis) []string {
	out := make([]string, len(forms))
	for i, f := range forms {
		out[i] = f[FeatDiac]
	}
	return out
}

func TestLoadDatabase(t *testing.T) {
	db := loadTiny(t)

	if !db.Flags.Analysis || !db.Flags.Generation {
		t.Errorf("mode r: Flags = %+v, want analysis and generation", db.Flags)
	}
	if got := len(db.prefixes); got != 2 {
		t.Errorf("loaded %d prefixes, want 2", got)
	}
	if got := len(db.stems); got != 4 {
		t.Errorf("loaded %d stems, want 4", got)
	}
	if got := len(db.suffixes); got != 4 {
		t.Errorf("loaded %d suffixes, want 4", got)
	}
	if got := len(db.lemmas); got != 2 {
		t.Errorf("lemma index has %d entries, want 2", got)
	}

	defines := db.Defines()
	if got := len(defines); got != 21 {
		t.Errorf("schema has %d features, want 21", got)
	}
	if values, ok := defines["lex"]; !ok || values != nil {
		t.Errorf("lex domain = %v (present=%v), want open (nil)", values, ok)
	}
	if values := defines["pos"]; !slices.Equal(values, []string{"noun", "verb"}) {
		t.Errorf("pos domain = %v, want [noun verb]", values)
	}
}

func TestLoadDatabaseModes(t *testing.T) {
	db, err := LoadDatabase(tinyDB, "a")
	if err != nil {
		t.Fatalf("mode a: %v", err)
	}
	if !db.Flags.Analysis || db.Flags.Generation {
		t.Errorf("mode a: Flags = %+v, want analysis only", db.Flags)
	}

	db, err = LoadDatabase(tinyDB, "g")
	if err != nil {
		t.Fatalf("mode g: %v", err)
	}
	if db.Flags.Analysis || !db.Flags.Generation {
		t.Errorf("mode g: Flags = %+v, want generation only", db.Flags)
	}

	if _, err := LoadDatabase(tinyDB, "z"); err == nil {
		t.Error("mode z: expected error")
	}
	if _, err := LoadDatabase(tinyDB, ""); err == nil {
		t.Error("empty mode: expected error")
	}
	if _, err := LoadDatabase("testdata/missing.db", "r"); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestDediac(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{kataba, "كتب"},
		{kutiba, "كتب"},
		{kitabuhu, "كتابه"},
		{katabat, "كتبت"},
		{"كتب", "كتب"},         // already bare
		{"كـتب", "كتب"},        // tatweel
		{"رَحْمَٰن", "رحمن"},       // sukun + superscript alef
		{"مُحَمَّد", "محمد"},       // shadda
		{"كِتابٌ", "كتاب"},       // dammatan
		{"", ""},
	}
	for _, tt := range tests {
		if got := Dediac(tt.in); got != tt.want {
			t.Errorf("Dediac(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		fn   string
		in   string
		want string
	}{
		{"NormalizeAlef", "أحمد", "احمد"},
		{"NormalizeAlef", "إسلام", "اسلام"},
		{"NormalizeAlef", "آمن", "امن"},
		{"NormalizeAlef", "ٱلكتاب", "الكتاب"},
		{"NormalizeTehMarbuta", "مكتبة", "مكتبه"},
		{"NormalizeAlefMaksura", "مستشفى", "مستشفي"},
	}
	for _, tt := range tests {
		var got string
		switch tt.fn {
		case "NormalizeAlef":
			got = NormalizeAlef(tt.in)
		case "NormalizeTehMarbuta":
			got = NormalizeTehMarbuta(tt.in)
		case "NormalizeAlefMaksura":
			got = NormalizeAlefMaksura(tt.in)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.fn, tt.in, got, tt.want)
		}
	}
}

func TestLemmaOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"كَتَب-و_1", lemmaKTB},
		{"كِتاب_1", kitab},
		{"a_b-c", "a"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LemmaOf(tt.in); got != tt.want {
			t.Errorf("LemmaOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	db := loadTiny(t)
	analyzer, err := NewAnalyzer(db)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	analyses := analyzer.Analyze(kataba)
	want := []string{kataba, kutiba, kutub}
	if got := diacs(analyses); !slices.Equal(got, want) {
		t.Fatalf("Analyze(%q) diacs = %v, want %v", kataba, got, want)
	}

	first := analyses[0]
	if first[FeatPOS] != "verb" {
		t.Errorf("first analysis pos = %q, want verb", first[FeatPOS])
	}
	if first[FeatLex] != "كَتَب-و_1" {
		t.Errorf("first analysis lex = %q", first[FeatLex])
	}
	if first[FeatBW] != "katab/PV+a/PVSUFF_SUBJ:3MS" {
		t.Errorf("first analysis bw = %q", first[FeatBW])
	}
	if first["asp"] != "p" || first["per"] != "3" || first["vox"] != "a" {
		t.Errorf("first analysis features = %v", first)
	}
	// Verb defaults mark state and case inapplicable.
	if first["stt"] != ValueNotApplicable || first["cas"] != ValueNotApplicable {
		t.Errorf("first analysis stt/cas = %q/%q, want na/na", first["stt"], first["cas"])
	}

	noun := analyses[2]
	if noun[FeatPOS] != "noun" || noun["num"] != "p" {
		t.Errorf("third analysis = %v, want plural noun", noun)
	}
}

func TestAnalyzePrefixed(t *testing.T) {
	db := loadTiny(t)
	analyzer, _ := NewAnalyzer(db)

	analyses := analyzer.Analyze("وكتب")
	want := []string{waKataba, waKutiba, waKutub}
	if got := diacs(analyses); !slices.Equal(got, want) {
		t.Fatalf("Analyze(وكتب) diacs = %v, want %v", got, want)
	}
	for _, a := range analyses {
		if a["prc2"] != "wa_conj" {
			t.Errorf("prefixed analysis prc2 = %q, want wa_conj", a["prc2"])
		}
	}
}

func TestAnalyzeUnknownWord(t *testing.T) {
	db := loadTiny(t)
	analyzer, _ := NewAnalyzer(db)

	if got := analyzer.Analyze("قرأ"); len(got) != 0 {
		t.Errorf("Analyze(قرأ) = %v, want none", diacs(got))
	}
	if got := analyzer.Analyze(""); len(got) != 0 {
		t.Errorf("Analyze(\"\") = %v, want none", diacs(got))
	}
}

func TestGenerate(t *testing.T) {
	db := loadTiny(t)
	generator, err := NewGenerator(db)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	// Fully specified 3ms active perfect, bare of clitics.
	feats := FeatureSet{
		"pos": "verb", "asp": "p", "per": "3", "gen": "m", "num": "s",
		"vox": "a", "mod": "i", "prc2": "0",
	}
	forms := generator.Generate(lemmaKTB, feats)
	if got := diacs(forms); !slices.Equal(got, []string{kataba}) {
		t.Errorf("Generate(%q) = %v, want [%s]", lemmaKTB, got, kataba)
	}

	// Without the prc2 constraint the conjunction prefix also matches.
	delete(feats, "prc2")
	forms = generator.Generate(lemmaKTB, feats)
	if got := diacs(forms); !slices.Equal(got, []string{kataba, waKataba}) {
		t.Errorf("Generate(%q) without prc2 = %v, want [%s %s]", lemmaKTB, got, kataba, waKataba)
	}

	// Underspecified request yields all compatible forms.
	forms = generator.Generate(kitab, FeatureSet{"num": "p"})
	want := []string{kutub, "كُتُبُهُ", waKutub, "وَكُتُبُهُ"}
	if got := diacs(forms); !slices.Equal(got, want) {
		t.Errorf("Generate(%q, num:p) = %v, want %v", kitab, got, want)
	}

	if got := generator.Generate("قرأ", nil); len(got) != 0 {
		t.Errorf("Generate(unknown lemma) = %v, want none", diacs(got))
	}
}

func TestConstructorConfiguration(t *testing.T) {
	analysisOnly, err := LoadDatabase(tinyDB, "a")
	if err != nil {
		t.Fatal(err)
	}
	generationOnly, err := LoadDatabase(tinyDB, "g")
	if err != nil {
		t.Fatal(err)
	}

	var confErr *ConfigurationError
	if _, err := NewAnalyzer(generationOnly); !errors.As(err, &confErr) {
		t.Errorf("NewAnalyzer(generation-only db) err = %v, want ConfigurationError", err)
	}
	if _, err := NewAnalyzer(nil); !errors.As(err, &confErr) {
		t.Errorf("NewAnalyzer(nil) err = %v, want ConfigurationError", err)
	}
	if _, err := NewGenerator(analysisOnly); !errors.As(err, &confErr) {
		t.Errorf("NewGenerator(analysis-only db) err = %v, want ConfigurationError", err)
	}
	if _, err := NewGenerator(nil); !errors.As(err, &confErr) {
		t.Errorf("NewGenerator(nil) err = %v, want ConfigurationError", err)
	}
}
