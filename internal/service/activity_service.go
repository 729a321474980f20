package service

import (
	"context"

	"memorial-park-svc/internal/activity"
	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// ActivityService lists the audit trail
type ActivityService interface {
	List(ctx context.Context, sess session.Session, state listview.State) (listview.Result[activity.Entry], error)
}

type activityService struct {
	client *apiclient.Client
	logger *logger.Logger
}

// NewActivityService creates a new activity log service
func NewActivityService(client *apiclient.Client, logger *logger.Logger) ActivityService {
	return &activityService{client: client, logger: logger}
}

func (s *activityService) List(ctx context.Context, sess session.Session, state listview.State) (listview.Result[activity.Entry], error) {
	if !sess.IsStaff() {
		return listview.Result[activity.Entry]{}, ErrForbidden
	}

	entries, err := s.client.ActivityLogs(ctx, sess)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load activity logs")
		return listview.Result[activity.Entry]{}, err
	}

	if state.Sort.Key == "" {
		state.Sort = listview.Sort{Key: "timestamp", Direction: listview.Descending}
	}
	return listview.Apply(activity.Decorate(entries), state, activity.Columns), nil
}
