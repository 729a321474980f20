package report

import "regexp"

var (
	summablePattern = regexp.MustCompile(`(?i)amount|revenue|payment|total|count|collect|balance|price|sales|lots|sold|available|occupied|reserved|interment|deceased|transaction|fee|penalty|qty|quantity`)
	excludedPattern = regexp.MustCompile(`(?i)\b(rates?|percent(age)?|dates?|periods?|names?|status|gardens?|sections?|sectors?|blocks?|types?|category|categories|method|remarks?|notes?|description)\b|%|\bid\b|^no\.?$`)
	// calendar words exclude a column unless it holds money ("Amount Paid This Month")
	calendarPattern = regexp.MustCompile(`(?i)\b(months?|years?)\b`)

	currencyPattern    = regexp.MustCompile(`(?i)amount|revenue|price|balance|collect|fee|penalty|total`)
	notCurrencyPattern = regexp.MustCompile(`(?i)count|lots|number|qty|quantity`)

	occupancyRatePattern = regexp.MustCompile(`(?i)occupancy|rate`)
	occupiedPattern      = regexp.MustCompile(`(?i)sold|occupied`)
	totalLotsPattern     = regexp.MustCompile(`(?i)total lots`)
	totalPattern         = regexp.MustCompile(`(?i)total`)
)

// IsSummable reports whether the totals row sums a column. Exclusion wins.
func IsSummable(header string) bool {
	if !summablePattern.MatchString(header) || excludedPattern.MatchString(header) {
		return false
	}
	return !calendarPattern.MatchString(header) || IsCurrency(header)
}

// IsCurrency reports whether a column is formatted as pesos
func IsCurrency(header string) bool {
	return currencyPattern.MatchString(header) && !notCurrencyPattern.MatchString(header)
}

// occupancyColumns finds the rate, numerator and denominator columns of an
// inventory report (0-based, -1 when missing)
func occupancyColumns(headers []string) (rate, num, den int) {
	rate, num, den = -1, -1, -1
	for i, h := range headers {
		if rate < 0 && occupancyRatePattern.MatchString(h) && excludedPattern.MatchString(h) {
			rate = i
		}
		if num < 0 && occupiedPattern.MatchString(h) && IsSummable(h) {
			num = i
		}
	}
	for i, h := range headers {
		if i != num && totalLotsPattern.MatchString(h) && IsSummable(h) {
			den = i
			break
		}
	}
	if den < 0 {
		for i, h := range headers {
			if i != num && totalPattern.MatchString(h) && IsSummable(h) {
				den = i
				break
			}
		}
	}
	return rate, num, den
}

// Kinds lists the reports the remote API serves
var Kinds = []string{"revenue", "payments", "inventory", "interments", "outstanding"}

// ValidKind reports whether kind is a known report
func ValidKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
