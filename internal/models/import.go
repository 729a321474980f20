package models

// ImportFailure is a single rejected row of a bulk import
type ImportFailure struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult is the remote API's answer to a bulk import upload
type ImportResult struct {
	Created  int             `json:"created"`
	Failed   int             `json:"failed"`
	Failures []ImportFailure `json:"errors,omitempty"`
}
