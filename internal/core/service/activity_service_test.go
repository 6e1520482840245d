package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/core/domain"
)

func TestActivityService_Process(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.ActivityEvent{DeviceID: "dev-1", Action: domain.ActionLogin}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(repo.events))
	}
	if repo.events[0].Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestActivityService_ProcessError(t *testing.T) {
	boom := errors.New("insert failed")
	svc := NewActivityService(&stubActivityRepo{err: boom}, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.ActivityEvent{DeviceID: "dev-1"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}

func TestRecord_NilRecorder(t *testing.T) {
	record(nil, "dev-1", nil, domain.ActionLogout, "", "")
}

func TestRecord_CopiesSession(t *testing.T) {
	rec := &recorder{}
	record(rec, "dev-1", &domain.Session{ID: "u-1", Role: domain.RoleAdmin}, domain.ActionCheckout, domain.ViewCheckout, "ORD-1")

	if len(rec.events) != 1 {
		t.Fatalf("expected one event")
	}
	ev := rec.events[0]
	if ev.UserID != "u-1" || ev.Role != domain.RoleAdmin || ev.Detail != "ORD-1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
