package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-querydialog/pkg/querydialog"
	"github.com/goliatone/go-querydialog/pkg/testsupport"
	"github.com/goliatone/go-querydialog/pkg/validation"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	selects      []SelectConfig
	inputCfgs    []InputConfig
	infoMessages []string
	inputPos     int
	selectPos    int
	failWith     error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		if s.failWith != nil {
			return "", s.failWith
		}
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		if s.failWith != nil {
			return -1, s.failWith
		}
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type events struct {
	creates int
	cancels int
}

func newSession(t *testing.T, driver *stubDriver, categories ...string) (*Session, *events) {
	t.Helper()
	ctrl, err := querydialog.New(testsupport.Sample().Tree, testsupport.Catalog(categories...))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	ev := &events{}
	ctrl.OnCreate(func(querydialog.QueryCreationRequest) { ev.creates++ })
	ctrl.OnCancel(func() { ev.cancels++ })

	s, err := NewSession(ctrl, WithPromptDriver(driver), WithCategorySuggestions(categories))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, ev
}

func TestRun_CreatesQuery(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{1, 0}, // virtual host, Create
		inputs:    []string{"queue"},
	}
	s, ev := newSession(t, driver, "Queue")

	req, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if req.Preference.Value.Category != "Queue" || req.ParentObject.ID != "V1" {
		t.Fatalf("unexpected request %+v", req)
	}
	if ev.creates != 1 || ev.cancels != 0 {
		t.Fatalf("expected one create, got %+v", ev)
	}

	scopePrompt := driver.selects[0]
	if diff := cmp.Diff([]string{"Main", "VH:Main/default"}, scopePrompt.Options); diff != "" {
		t.Fatalf("scope options mismatch (-want +got):\n%s", diff)
	}
	if scopePrompt.DefaultIndex != 0 {
		t.Fatalf("expected default broker to be preselected")
	}
	if scopePrompt.Message != "Scope" || driver.inputCfgs[0].Message != "Category" {
		t.Fatalf("prompt labels must come from the form, got %q and %q", scopePrompt.Message, driver.inputCfgs[0].Message)
	}
	if driver.inputCfgs[0].Help == "" || scopePrompt.Help == "" {
		t.Fatalf("prompt help must come from the field descriptions")
	}
	if diff := cmp.Diff([]string{actionCreate, actionEdit, actionCancel}, driver.selects[1].Options); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_UnknownCategoryDisablesCreate(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 0, 0, 0}, // broker, Edit, broker, Create
		inputs:    []string{"bogus", "connection"},
	}
	s, ev := newSession(t, driver, "Connection")

	req, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if req.Preference.Value.Category != "Connection" {
		t.Fatalf("unexpected category %q", req.Preference.Value.Category)
	}
	if diff := cmp.Diff([]string{actionEdit, actionCancel}, driver.selects[1].Options); diff != "" {
		t.Fatalf("create must not be offered for an unknown category (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], `"bogus"`) {
		t.Fatalf("expected disabled notice, got %v", driver.infoMessages)
	}
	if driver.inputCfgs[1].Default != "bogus" {
		t.Fatalf("previous input should be offered again, got %q", driver.inputCfgs[1].Default)
	}
	if ev.creates != 1 {
		t.Fatalf("expected one create, got %d", ev.creates)
	}
}

func TestRun_Cancel(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 2}, // broker, Cancel
		inputs:    []string{"queue"},
	}
	s, ev := newSession(t, driver, "Queue")

	if _, err := s.Run(context.Background()); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if ev.cancels != 1 || ev.creates != 0 {
		t.Fatalf("expected one cancel, got %+v", ev)
	}
}

func TestRun_AbortCancelsDialog(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0},
		failWith:  ErrAborted,
	}
	s, ev := newSession(t, driver, "Queue")

	if _, err := s.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if ev.cancels != 1 {
		t.Fatalf("abort must emit cancel, got %+v", ev)
	}
}

func TestRun_RejectedSubmitIsReported(t *testing.T) {
	reject := validatorFunc(func(map[string]string) validation.Result {
		return validation.Result{Issues: []validation.Issue{{Field: "category", Message: "rejected"}}}
	})
	ctrl, err := querydialog.New(testsupport.Sample().Tree, testsupport.Catalog("Queue"), querydialog.WithFormValidator(reject))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	cancels := 0
	ctrl.OnCancel(func() { cancels++ })

	driver := &stubDriver{
		selectIdx: []int{0, 0, 0, 2}, // broker, Create (rejected), broker, Cancel
		inputs:    []string{"queue", "queue"},
	}
	s, err := NewSession(ctrl, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if _, err := s.Run(context.Background()); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	want := []string{
		"! Form contains invalid data. Please correct first",
		"! category: rejected",
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if cancels != 1 {
		t.Fatalf("expected one cancel, got %d", cancels)
	}
}

func TestSuggest(t *testing.T) {
	s := &Session{suggestions: []string{"Queue", "Connection", "QueueGroup"}}
	if diff := cmp.Diff([]string{"Queue", "QueueGroup"}, s.suggest("qu")); diff != "" {
		t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSession_RequiresController(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatalf("expected error")
	}
}

type validatorFunc func(map[string]string) validation.Result

func (fn validatorFunc) Validate(values map[string]string) validation.Result {
	return fn(values)
}
