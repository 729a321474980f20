package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/report"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// ReportFile is an exported workbook
type ReportFile struct {
	Filename string
	Content  []byte
}

// ReportSummary is the headline figures of one report
type ReportSummary struct {
	Kind   string             `json:"kind"`
	Title  string             `json:"title"`
	Rows   int                `json:"rows"`
	Totals map[string]float64 `json:"totals"`
}

// ReportService serves report datasets and their xlsx export
type ReportService interface {
	Dataset(ctx context.Context, sess session.Session, kind string, filter models.ReportFilter) (*models.ReportDataset, error)
	Export(ctx context.Context, sess session.Session, kind string, filter models.ReportFilter) (*ReportFile, error)
	Summary(ctx context.Context, sess session.Session, filter models.ReportFilter) ([]ReportSummary, error)
}

type reportService struct {
	client  *apiclient.Client
	console config.ConsoleConfig
	logger  *logger.Logger
	now     func() time.Time
}

// NewReportService creates a new report service
func NewReportService(client *apiclient.Client, console config.ConsoleConfig, logger *logger.Logger) ReportService {
	return &reportService{
		client:  client,
		console: console,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *reportService) Dataset(ctx context.Context, sess session.Session, kind string, filter models.ReportFilter) (*models.ReportDataset, error) {
	if !report.ValidKind(kind) {
		return nil, ErrUnknownReport
	}

	ds, err := s.client.Report(ctx, sess, kind, filter)
	if err != nil {
		s.logger.WithError(err).WithField("kind", kind).Error("Failed to load report")
		return nil, err
	}
	return ds, nil
}

// Export renders a report into a protected workbook
func (s *reportService) Export(ctx context.Context, sess session.Session, kind string, filter models.ReportFilter) (*ReportFile, error) {
	ds, err := s.Dataset(ctx, sess, kind, filter)
	if err != nil {
		return nil, err
	}

	content, filename, err := report.Export(*ds, report.Options{
		CompanyName: s.console.CompanyName,
		Filters:     report.DescribeFilters(filter),
		GeneratedAt: s.now(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("kind", kind).Error("Failed to export report")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"kind":     kind,
		"filename": filename,
		"rows":     len(ds.Rows),
		"actor":    sess.Actor,
	}).Info("Report exported successfully")
	return &ReportFile{Filename: filename, Content: content}, nil
}

// Summary loads every report concurrently and returns their totals.
// One failing report fails the summary.
func (s *reportService) Summary(ctx context.Context, sess session.Session, filter models.ReportFilter) ([]ReportSummary, error) {
	out := make([]ReportSummary, len(report.Kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range report.Kinds {
		g.Go(func() error {
			ds, err := s.client.Report(gctx, sess, kind, filter)
			if err != nil {
				return err
			}
			out[i] = ReportSummary{
				Kind:   kind,
				Title:  ds.Title,
				Rows:   len(ds.Rows),
				Totals: report.Totals(*ds),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Failed to load report summary")
		return nil, err
	}
	return out, nil
}
