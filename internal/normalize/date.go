package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a normalized DD/MM/YYYY cell.
type Date struct {
	ISO   string `json:"date"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
}

// ParseDate converts DD/MM/YYYY text into an ISO date. Input that is not
// exactly three slash separated parts comes back unchanged with a zero year
// and month; a zero year never survives the retention cutoff.
func ParseDate(text string) Date {
	text = strings.TrimSpace(text)
	if text == "" {
		return Date{}
	}

	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return Date{ISO: text}
	}

	day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errD != nil || errM != nil || errY != nil {
		return Date{ISO: text}
	}

	return Date{
		ISO:   fmt.Sprintf("%d-%02d-%02d", year, month, day),
		Year:  year,
		Month: month,
	}
}
