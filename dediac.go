package calima

import "strings"

// dediacReplacer removes the Arabic diacritic marks: the short vowels
// and nunation (U+064B–U+0650), shadda (U+0651), sukun (U+0652), the
// superscript (dagger) alef (U+0670) and tatweel (U+0640).
var dediacReplacer = strings.NewReplacer(
	"ً", "", // fathatan
	"ٌ", "", // dammatan
	"ٍ", "", // kasratan
	"َ", "", // fatha
	"ُ", "", // damma
	"ِ", "", // kasra
	"ّ", "", // shadda
	"ْ", "", // sukun
	"ٰ", "", // superscript alef
	"ـ", "", // tatweel
)

// Dediac strips all Arabic diacritics from s. Comparisons between
// surface words and analysis forms are always made on dediacritized
// strings.
func Dediac(s string) string {
	return dediacReplacer.Replace(s)
}

// alefReplacer maps the hamzated and madda alef variants and alef
// wasla to the bare alef.
var alefReplacer = strings.NewReplacer(
	"آ", "ا", // alef with madda
	"أ", "ا", // alef with hamza above
	"إ", "ا", // alef with hamza below
	"ٱ", "ا", // alef wasla
)

// NormalizeAlef replaces all alef variants in s with the bare alef.
func NormalizeAlef(s string) string {
	return alefReplacer.Replace(s)
}

// NormalizeTehMarbuta replaces teh marbuta with heh.
func NormalizeTehMarbuta(s string) string {
	return strings.ReplaceAll(s, "ة", "ه")
}

// NormalizeAlefMaksura replaces alef maksura with yeh.
func NormalizeAlefMaksura(s string) string {
	return strings.ReplaceAll(s, "ى", "ي")
}
