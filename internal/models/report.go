package models

// ReportFilter holds the filters a report dataset is requested with
type ReportFilter struct {
	From        string `form:"from" json:"from,omitempty" example:"2025-01-01"`
	To          string `form:"to" json:"to,omitempty" example:"2025-12-31"`
	Garden      string `form:"garden" json:"garden,omitempty"`
	Section     string `form:"section" json:"section,omitempty"`
	Granularity string `form:"granularity" json:"granularity,omitempty" example:"monthly"`
}

// ReportDataset is a tabular report as returned by the remote API
type ReportDataset struct {
	Kind    string          `json:"kind" example:"revenue"`
	Title   string          `json:"title" example:"Monthly Revenue"`
	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows" swaggertype:"array,object"`
}
