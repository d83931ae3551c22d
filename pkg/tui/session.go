package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-querydialog/pkg/model"
	"github.com/goliatone/go-querydialog/pkg/querydialog"
	"github.com/goliatone/go-querydialog/pkg/render"
)

const (
	actionCreate = "Create"
	actionEdit   = "Edit"
	actionCancel = "Cancel"
)

// Session runs a query creation dialog in the terminal. It forwards every
// field change to the controller and only offers Create while the last
// evaluation reported the selection as valid. Cancel is always offered.
type Session struct {
	ctrl        *querydialog.Controller
	driver      PromptDriver
	theme       Theme
	suggestions []string
	logger      *slog.Logger

	scopeField    model.Field
	categoryField model.Field
}

// NewSession wraps ctrl. The survey driver is used unless WithPromptDriver
// overrides it.
func NewSession(ctrl *querydialog.Controller, options ...Option) (*Session, error) {
	if ctrl == nil {
		return nil, errors.New("tui: controller is required")
	}
	s := &Session{
		ctrl:   ctrl,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		theme: Theme{
			ErrorPrefix: "! ",
		},
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}

	form := querydialog.Form()
	s.scopeField, _ = form.Field(querydialog.FieldScope)
	s.categoryField, _ = form.Field(querydialog.FieldCategory)
	return s, nil
}

// Run prompts until the operator creates the query or cancels. Rejected
// submits are reported and the operator may edit and retry. Cancelling or
// aborting emits the controller's cancel event and returns ErrCancelled or
// ErrAborted.
func (s *Session) Run(ctx context.Context) (querydialog.QueryCreationRequest, error) {
	if ctx == nil {
		return querydialog.QueryCreationRequest{}, errors.New("tui: context is required")
	}

	entries := s.ctrl.Entries()
	labels := make([]string, len(entries))
	for idx, entry := range entries {
		labels[idx] = render.SanitizeLabel(entry.Label)
	}

	for {
		current := 0
		for idx, entry := range entries {
			if entry.ID == s.ctrl.ScopeID() {
				current = idx
				break
			}
		}

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.scopeField.DisplayLabel(),
			Options:      labels,
			DefaultIndex: current,
			Help:         s.scopeField.Description,
		})
		if err != nil {
			return s.abort(err)
		}
		if idx < 0 || idx >= len(entries) {
			s.info(ctx, s.theme.ErrorPrefix+"unknown scope selection")
			continue
		}
		s.ctrl.SetScope(entries[idx].ID)

		input, err := s.driver.Input(ctx, InputConfig{
			Message: s.categoryField.DisplayLabel(),
			Default: s.ctrl.CategoryInput(),
			Help:    s.categoryField.Description,
			Suggest: s.suggest,
		})
		if err != nil {
			return s.abort(err)
		}
		enabled := s.ctrl.SetCategory(input)

		actions := []string{actionEdit, actionCancel}
		if enabled {
			actions = append([]string{actionCreate}, actions...)
		} else {
			s.info(ctx, s.theme.InfoPrefix+fmt.Sprintf("Category %q is not known; Create is disabled", render.SanitizeLabel(input)))
		}

		choice, err := s.driver.Select(ctx, SelectConfig{Message: "Action", Options: actions})
		if err != nil {
			return s.abort(err)
		}
		if choice < 0 || choice >= len(actions) {
			continue
		}

		switch actions[choice] {
		case actionCreate:
			req, err := s.ctrl.Submit()
			if err != nil {
				if errors.Is(err, querydialog.ErrClosed) {
					return querydialog.QueryCreationRequest{}, err
				}
				s.logger.Debug("submit rejected", "error", err)
				for _, line := range render.MapSubmitError(err).Lines(querydialog.FieldScope, querydialog.FieldCategory) {
					s.info(ctx, s.theme.ErrorPrefix+line)
				}
				continue
			}
			return req, nil
		case actionCancel:
			s.ctrl.Cancel()
			return querydialog.QueryCreationRequest{}, ErrCancelled
		}
	}
}

func (s *Session) abort(err error) (querydialog.QueryCreationRequest, error) {
	s.logger.Debug("dialog aborted", "error", err)
	s.ctrl.Cancel()
	return querydialog.QueryCreationRequest{}, err
}

func (s *Session) info(ctx context.Context, msg string) {
	if err := s.driver.Info(ctx, msg); err != nil {
		s.logger.Debug("info message dropped", "error", err)
	}
}

func (s *Session) suggest(toComplete string) []string {
	if len(s.suggestions) == 0 {
		return nil
	}
	prefix := strings.ToLower(toComplete)
	var out []string
	for _, name := range s.suggestions {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, name)
		}
	}
	return out
}
