package normalize

import (
	"strings"

	"bizdash/pkg/contracts/domain"
)

const cancelMarker = "CANCELADO"

// IsCancelled derives the cancelled flag from a status text. It is the only
// place the flag is computed.
func IsCancelled(status string) bool {
	return strings.TrimSpace(status) != domain.StatusNormal
}

// StatusOrNormal returns the trimmed status, defaulting blank cells to
// NORMAL.
func StatusOrNormal(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return domain.StatusNormal
	}
	return status
}

// StatusFromUnit maps a contract unit cell to a status: units marked
// "## CANCELADO ##" are cancelled.
func StatusFromUnit(unit string) string {
	if strings.Contains(unit, cancelMarker) {
		return domain.StatusCancelled
	}
	return domain.StatusNormal
}

// CleanUnit strips the cancellation marker from a unit cell.
func CleanUnit(unit string) string {
	return strings.TrimSpace(strings.ReplaceAll(unit, "## "+cancelMarker+" ##", ""))
}

// IsDirectBroker reports whether a broker cell denotes a direct sale:
// blank, or the literal "direta".
func IsDirectBroker(broker string) bool {
	b := strings.ToLower(strings.TrimSpace(broker))
	return b == "" || b == "direta"
}

// YesNo reads "SIM" (any case) as true.
func YesNo(text string) bool {
	return strings.ToUpper(strings.TrimSpace(text)) == "SIM"
}
