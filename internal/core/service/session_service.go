package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/core/shell"
)

// SessionService implements login and logout on top of the device shell.
type SessionService struct {
	ws       *Workspace
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewSessionService(ws *Workspace, activity ports.ActivityRecorder, log zerolog.Logger) *SessionService {
	return &SessionService{ws: ws, activity: activity, log: log}
}

func (s *SessionService) Current(ctx context.Context, deviceID string) (*ports.SessionState, error) {
	var state *ports.SessionState
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		state = sessionState(sh)
		return nil
	})
	return state, err
}

// Login authenticates the device and moves it to home. Failures leave the
// device untouched and return domain.ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, deviceID, email, password string) (*ports.SessionState, error) {
	var state *ports.SessionState
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		session, err := sh.Session.Login(ctx, email, password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				record(s.activity, deviceID, nil, domain.ActionLoginFailed, "", email)
			}
			return err
		}
		if _, err := sh.Navigation.Navigate(ctx, domain.ViewHome, nil, nil); err != nil {
			return err
		}

		s.log.Info().Str("device_id", deviceID).Str("user_id", session.ID).Str("role", string(session.Role)).Msg("session opened")
		record(s.activity, deviceID, session, domain.ActionLogin, "", "")
		state = sessionState(sh)
		return nil
	})
	return state, err
}

// Logout clears the session of the device and moves it to home.
func (s *SessionService) Logout(ctx context.Context, deviceID string) (*ports.SessionState, error) {
	var state *ports.SessionState
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		previous := sh.Session.Current()
		if err := sh.Session.Logout(ctx); err != nil {
			return err
		}
		if _, err := sh.Navigation.Navigate(ctx, domain.ViewHome, nil, nil); err != nil {
			return err
		}

		if previous != nil {
			s.log.Info().Str("device_id", deviceID).Str("user_id", previous.ID).Msg("session closed")
			record(s.activity, deviceID, previous, domain.ActionLogout, "", "")
		}
		state = sessionState(sh)
		return nil
	})
	return state, err
}

func sessionState(sh *shell.Shell) *ports.SessionState {
	return &ports.SessionState{
		Session:         sh.Session.Current(),
		Token:           sh.Session.Token(),
		IsAuthenticated: sh.Session.IsAuthenticated(),
		Role:            sh.Session.Role(),
		View:            sh.Navigation.View(),
	}
}
