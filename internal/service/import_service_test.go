package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"memorial-park-svc/internal/importer"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/pkg/logger"
)

func workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImportService_PartialSuccess(t *testing.T) {
	remote, client := newFakeRemote(t)
	failures := make([]models.ImportFailure, 0, 12)
	for i := 0; i < 12; i++ {
		failures = append(failures, models.ImportFailure{Row: i + 2, Message: fmt.Sprintf("bad row %d", i)})
	}
	remote.reply("POST /imports/{kind}", models.ImportResult{Created: 30, Failed: 12, Failures: failures})
	svc := NewImportService(client, logger.NewNopLogger())

	content := workbook(t, []interface{}{"username", "first_name"}, []interface{}{"jdelacruz", "Juan"})
	summary, err := svc.Import(context.Background(), staffSession, importer.KindAccounts, "accounts.xlsx", content)
	require.NoError(t, err)
	assert.Equal(t, "Imported 30 record(s)", summary.SuccessMessage)
	assert.Contains(t, summary.FailureAlert, "…and 2 more")
	assert.Equal(t, int64(1500), summary.AlertDelayMs)
	assert.Equal(t, 1, remote.hitCount("POST /imports/{kind}"))
}

func TestImportService_RejectsBeforeUpload(t *testing.T) {
	remote, client := newFakeRemote(t)
	remote.reply("POST /imports/{kind}", models.ImportResult{})
	svc := NewImportService(client, logger.NewNopLogger())

	_, err := svc.Import(context.Background(), staffSession, importer.KindDeceased, "records.csv", []byte("a,b"))
	assert.ErrorIs(t, err, importer.ErrUnsupportedFile)
	assert.True(t, IsImportFileError(err))

	_, err = svc.Import(context.Background(), staffSession, importer.KindDeceased, "records.xlsx", workbook(t, []interface{}{"full_name"}))
	assert.ErrorIs(t, err, importer.ErrEmptyWorkbook)

	_, err = svc.Import(context.Background(), staffSession, "lots", "lots.xlsx", nil)
	assert.ErrorIs(t, err, ErrUnknownImport)

	_, err = svc.Import(context.Background(), customerSession, importer.KindDeceased, "records.xlsx", nil)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.Equal(t, 0, remote.hitCount("POST /imports/{kind}"))
}
