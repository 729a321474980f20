// Package importer pre-checks bulk import workbooks and summarizes partial results.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"memorial-park-svc/internal/models"
)

// Import kinds accepted by the remote API
const (
	KindAccounts = "accounts"
	KindDeceased = "deceased"
)

// MaxListedFailures caps the failures named in the follow-up alert
const MaxListedFailures = 10

// AlertDelay is how long the console shows the success message before the failure alert
const AlertDelay = 1500 * time.Millisecond

var (
	ErrUnknownKind      = errors.New("unknown import kind")
	ErrUnsupportedFile  = errors.New("only .xlsx and .xls files can be imported")
	ErrEmptyWorkbook    = errors.New("worksheet is empty")
	ErrUnreadableUpload = errors.New("workbook could not be read")
)

// ValidKind reports whether kind can be imported
func ValidKind(kind string) bool {
	return kind == KindAccounts || kind == KindDeceased
}

// CheckFile rejects files the remote importer cannot use. For .xlsx it also
// opens the first sheet and requires a header plus at least one data row;
// .xls is forwarded unchecked. It returns the number of data rows, or -1 when unknown.
func CheckFile(filename string, content []byte) (int, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		if len(content) == 0 {
			return 0, ErrEmptyWorkbook
		}
		return -1, nil
	case ".xlsx":
	default:
		return 0, ErrUnsupportedFile
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return 0, fmt.Errorf("%w: no worksheet found", ErrEmptyWorkbook)
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}

	data := 0
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		data++
	}
	if len(rows) == 0 || data == 0 {
		return 0, ErrEmptyWorkbook
	}
	return data, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Summary is what the console shows after an import
type Summary struct {
	Created        int                    `json:"created"`
	Failed         int                    `json:"failed"`
	SuccessMessage string                 `json:"success_message"`
	FailureAlert   string                 `json:"failure_alert,omitempty"`
	AlertDelayMs   int64                  `json:"alert_delay_ms,omitempty"`
	Failures       []models.ImportFailure `json:"failures,omitempty"`
}

// Summarize builds the success message and, when rows failed, the delayed failure alert
func Summarize(res models.ImportResult) Summary {
	failed := res.Failed
	if failed < len(res.Failures) {
		failed = len(res.Failures)
	}

	s := Summary{
		Created:        res.Created,
		Failed:         failed,
		SuccessMessage: fmt.Sprintf("Imported %d record(s)", res.Created),
		Failures:       res.Failures,
	}
	if failed == 0 {
		return s
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d record(s) failed to import:", failed)
	listed := res.Failures
	if len(listed) > MaxListedFailures {
		listed = listed[:MaxListedFailures]
	}
	for _, f := range listed {
		if f.Row > 0 {
			fmt.Fprintf(&b, "\nRow %d: %s", f.Row, f.Message)
		} else {
			fmt.Fprintf(&b, "\n%s", f.Message)
		}
	}
	if more := failed - len(listed); more > 0 {
		fmt.Fprintf(&b, "\n…and %d more", more)
	}

	s.FailureAlert = b.String()
	s.AlertDelayMs = AlertDelay.Milliseconds()
	return s
}
