package report

import "memorial-park-svc/internal/models"

// Totals sums every summable column of a dataset the way the workbook's
// totals row does
func Totals(ds models.ReportDataset) map[string]float64 {
	out := make(map[string]float64)
	for c, h := range ds.Headers {
		if c == 0 || !IsSummable(h) {
			continue
		}
		var sum float64
		for _, row := range ds.Rows {
			if c >= len(row) {
				continue
			}
			if v, ok := numeric(row[c], true); ok {
				sum += v
			}
		}
		out[h] = sum
	}
	return out
}
