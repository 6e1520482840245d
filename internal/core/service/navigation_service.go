package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/core/shell"
)

// NavigationService moves devices between views and renders the current one.
type NavigationService struct {
	ws       *Workspace
	content  ports.ContentRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewNavigationService(ws *Workspace, content ports.ContentRepository, activity ports.ActivityRecorder, log zerolog.Logger) *NavigationService {
	return &NavigationService{ws: ws, content: content, activity: activity, log: log}
}

func (s *NavigationService) Current(ctx context.Context, deviceID string) (*ports.NavigationState, error) {
	var state *ports.NavigationState
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		state = &ports.NavigationState{View: sh.Navigation.View(), Params: sh.Navigation.Params()}
		return nil
	})
	return state, err
}

// Navigate runs the permission check for in.View and applies the transition.
// Denials are not errors: the resulting state points at login or 403.
func (s *NavigationService) Navigate(ctx context.Context, deviceID string, in ports.NavigateInput) (*ports.NavigationState, error) {
	var state *ports.NavigationState
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		tr, err := sh.Navigation.Navigate(ctx, in.View, in.Params, in.RoleOverride)
		if err != nil {
			return err
		}

		if tr.Outcome != shell.OutcomeAllowed {
			s.log.Debug().
				Str("device_id", deviceID).
				Str("requested", string(tr.Requested)).
				Str("resolved", string(tr.View)).
				Msg("navigation denied")
			record(s.activity, deviceID, sh.Session.Current(), domain.ActionNavigationDenied, tr.Requested, string(tr.Outcome))
		}

		state = &ports.NavigationState{View: tr.View, Params: tr.Params, Transition: &tr}
		return nil
	})
	return state, err
}

// Render selects the page for the current view. Landing content is fetched
// only for landing views; a failed fetch renders the skeleton.
func (s *NavigationService) Render(ctx context.Context, deviceID string) (*domain.Page, error) {
	var page domain.Page
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		view := sh.Navigation.View()

		var content *domain.PageContent
		if view.IsLanding() && s.content != nil {
			c, err := s.content.GetPageContent(ctx)
			switch {
			case err == nil:
				content = c
			case errors.Is(err, domain.ErrContentNotFound):
			default:
				s.log.Warn().Err(err).Str("device_id", deviceID).Msg("landing content unavailable")
			}
		}

		page = shell.Render(view, sh.Navigation.Params(), sh.Session.Current(), content)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
