package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that writes to repo.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single activity event.
func (s *activityService) Process(ctx context.Context, ev domain.ActivityEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if err := s.repo.Insert(ctx, &ev); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("device_id", ev.DeviceID).
		Str("action", string(ev.Action)).
		Str("view", string(ev.View)).
		Msg("activity recorded")
	return nil
}

// record hands an event to rec. A nil recorder drops it.
func record(rec ports.ActivityRecorder, deviceID string, session *domain.Session, action domain.ActivityAction, view domain.View, detail string) {
	if rec == nil {
		return
	}
	ev := domain.ActivityEvent{
		DeviceID:  deviceID,
		Action:    action,
		View:      view,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
	if session != nil {
		ev.UserID = session.ID
		ev.Role = session.Role
	}
	rec.Record(ev)
}
