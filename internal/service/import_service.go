package service

import (
	"context"
	"errors"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/importer"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// ImportService forwards bulk import workbooks to the remote API
type ImportService interface {
	Import(ctx context.Context, sess session.Session, kind, filename string, content []byte) (*importer.Summary, error)
}

type importService struct {
	client *apiclient.Client
	logger *logger.Logger
}

// NewImportService creates a new bulk import service
func NewImportService(client *apiclient.Client, logger *logger.Logger) ImportService {
	return &importService{client: client, logger: logger}
}

// Import pre-checks the workbook, uploads it and summarizes the partial result
func (s *importService) Import(ctx context.Context, sess session.Session, kind, filename string, content []byte) (*importer.Summary, error) {
	if !importer.ValidKind(kind) {
		return nil, ErrUnknownImport
	}
	if !sess.IsStaff() {
		return nil, ErrForbidden
	}

	rows, err := importer.CheckFile(filename, content)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"kind":     kind,
			"filename": filename,
		}).Warn("Import file rejected")
		return nil, err
	}

	res, err := s.client.Import(ctx, sess, kind, filename, content)
	if err != nil {
		s.logger.WithError(err).WithField("kind", kind).Error("Failed to import records")
		return nil, err
	}

	summary := importer.Summarize(*res)
	s.logger.WithFields(map[string]interface{}{
		"kind":     kind,
		"filename": filename,
		"rows":     rows,
		"created":  summary.Created,
		"failed":   summary.Failed,
		"actor":    sess.Actor,
	}).Info("Import finished")
	return &summary, nil
}

// IsImportFileError reports whether err is a workbook pre-check rejection
func IsImportFileError(err error) bool {
	return errors.Is(err, importer.ErrUnsupportedFile) ||
		errors.Is(err, importer.ErrEmptyWorkbook) ||
		errors.Is(err, importer.ErrUnreadableUpload)
}
