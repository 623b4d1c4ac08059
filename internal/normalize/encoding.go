package normalize

import "strings"

// encodingRepairs maps the corrupted sequences found in the client registry
// export (UTF-8 accents read back as Mac Roman) to the intended character.
// Only these sequences are repaired.
var encodingRepairs = []struct{ broken, fixed string }{
	{"√á", "Ç"}, {"√ß", "ç"}, {"√â", "É"}, {"√™", "ê"},
	{"√©", "é"}, {"√£", "ã"}, {"√°", "á"}, {"√≠", "í"},
	{"√≥", "ó"}, {"√É", "Ã"}, {"√Å", "Á"}, {"√ì", "Ó"},
	{"√ç", "Í"}, {"√º", "ú"}, {"√ü", "ü"}, {"√î", "Ô"},
	{"√ö", "Ú"}, {"√ê", "è"}, {"√ë", "ë"}, {"√ï", "ï"},
	{"√µ", "õ"},
}

var repairer = func() *strings.Replacer {
	pairs := make([]string, 0, len(encodingRepairs)*2)
	for _, r := range encodingRepairs {
		pairs = append(pairs, r.broken, r.fixed)
	}
	return strings.NewReplacer(pairs...)
}()

// RepairEncoding replaces every known corrupted sequence in s until none is
// left. Unknown artifacts pass through untouched.
func RepairEncoding(s string) string {
	if !strings.Contains(s, "√") {
		return s
	}
	for {
		repaired := repairer.Replace(s)
		if repaired == s {
			return repaired
		}
		s = repaired
	}
}
