package normalize

import (
	"regexp"
	"strings"
)

var (
	compositePattern = regexp.MustCompile(`^(\d+)\s*-\s*(.+)$`)
	projectPattern   = regexp.MustCompile(`Empreendimento\s+\d+\s*-\s*(.+?)(\s*-\s*Custo.*)?$`)
	companyPattern   = regexp.MustCompile(`Empresa\s+\d+\s*-\s*(.+)`)
	legalSuffix      = regexp.MustCompile(`(?i)\s+(SPE\s+)?LTDA\.?$`)
)

// Composite is a free-text "<id> - <name>" cell split in two.
type Composite struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SplitComposite extracts the leading integer and the trimmed name from
// "123 - Acme Corp". When the text does not have that shape both parts
// fall back to the raw text.
func SplitComposite(text string) Composite {
	m := compositePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Composite{ID: text, Name: text}
	}
	return Composite{ID: m[1], Name: strings.TrimSpace(m[2])}
}

// BrokerName returns the name part of a broker cell, or the trimmed cell
// when it carries no id.
func BrokerName(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if m := compositePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2])
	}
	return text
}

// CleanProjectLabel turns "Empreendimento 7 - Gran Tower - Custo indireto"
// into "Gran Tower".
func CleanProjectLabel(label string) string {
	m := projectPattern.FindStringSubmatch(label)
	if m == nil {
		return label
	}
	return strings.TrimSpace(m[1])
}

// CleanCompanyLabel turns "Empresa 1 - Grandezza Construtora Ltda" into
// "Grandezza Construtora", dropping a trailing LTDA or SPE LTDA.
func CleanCompanyLabel(label string) string {
	m := companyPattern.FindStringSubmatch(label)
	if m == nil {
		return label
	}
	name := strings.TrimSpace(m[1])
	return strings.TrimSpace(legalSuffix.ReplaceAllString(name, ""))
}
