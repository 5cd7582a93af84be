package affix

// manualSuffixes are common German derivational suffixes that the stemmers
// rarely isolate on their own.
var manualSuffixes = []string{
	"chen", "lein", "ismus", "ist", "istin", "nis", "nisse", "ologie", "kunde",
	"tät", "ität", "erin", "ler", "lerin", "erlin", "erei", "ant", "antin",
	"är", "ärin", "entin", "eur", "eurin", "euse", "ling", "öse", "or", "orin",
	"ator", "schaft", "tum", "art", "sorte", "sal", "sel", "wesen", "zeug",
	"artig", "bar", "erlei", "fach", "fältig", "mal", "malig", "haft", "haftig",
	"iv", "los", "leer", "arm", "frei", "mäßig", "gemäß", "reich", "voll", "sam",
	"wert", "würdig",
}

// ManualSuffixes returns a copy of the curated suffix list.
func ManualSuffixes() []string {
	out := make([]string, len(manualSuffixes))
	copy(out, manualSuffixes)
	return out
}
