package querydialog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-querydialog/pkg/catalog"
	"github.com/goliatone/go-querydialog/pkg/hierarchy"
	"github.com/goliatone/go-querydialog/pkg/scope"
	"github.com/goliatone/go-querydialog/pkg/validation"
)

// State is the lifecycle position of a Controller.
type State int

const (
	StateInitializing State = iota
	StateReady
	StateSubmitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateSubmitted:
		return "submitted"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller owns the scope and category selection of one dialog instance.
type Controller struct {
	metadata  catalog.Accessor
	validator FormValidator
	confirm   ConfirmControl
	logger    *slog.Logger

	scopes        scope.Result
	scopeID       string
	categoryInput string
	state         State

	createHandlers []CreateHandler
	cancelHandlers []CancelHandler
}

// New builds a controller and initialises it against structure. It fails with
// ErrEmptyHierarchy when structure offers no scope and with
// scope.ErrMalformedHierarchy when the structure breaks its contract.
func New(structure hierarchy.Structure, metadata catalog.Accessor, opts ...Option) (*Controller, error) {
	if metadata == nil {
		return nil, fmt.Errorf("%w: metadata accessor", ErrNilCollaborator)
	}
	if structure == nil {
		return nil, fmt.Errorf("%w: object structure", ErrNilCollaborator)
	}

	c := &Controller{
		metadata: metadata,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.validator == nil {
		c.validator = validation.MustFormValidator(Form())
	}

	if err := c.Initialize(structure); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize snapshots the selectable scopes of structure, selects the
// default scope and evaluates validity. Category input is kept. On failure the
// previous snapshot is discarded, the controller stays in StateInitializing
// and Submit refuses with ErrNotReady until a later Initialize succeeds.
func (c *Controller) Initialize(structure hierarchy.Structure) error {
	if structure == nil {
		return fmt.Errorf("%w: object structure", ErrNilCollaborator)
	}

	result, err := scope.BuildEntries(structure)
	if err == nil && result.Len() == 0 {
		err = ErrEmptyHierarchy
	} else if err != nil {
		err = fmt.Errorf("querydialog: initialize scope: %w", err)
	}
	if err != nil {
		c.scopes = scope.Result{}
		c.scopeID = ""
		c.state = StateInitializing
		c.logger.Debug("query dialog initialize failed", "error", err)
		c.Reevaluate()
		return err
	}

	c.scopes = result
	c.scopeID = result.DefaultID
	c.state = StateReady

	c.logger.Debug("query dialog initialized",
		"scopes", result.Len(),
		"default_scope", result.DefaultID,
	)
	c.Reevaluate()
	return nil
}

// SetScope records a scope selection and re-evaluates validity. Any id is
// accepted; unknown ids simply make the selection invalid.
func (c *Controller) SetScope(id string) bool {
	c.scopeID = id
	return c.Reevaluate()
}

// SetCategory records raw category input and re-evaluates validity.
func (c *Controller) SetCategory(input string) bool {
	c.categoryInput = input
	return c.Reevaluate()
}

// Reevaluate derives validity from the current selection and pushes it to the
// confirm control.
func (c *Controller) Reevaluate() bool {
	valid := c.Valid()
	if c.confirm != nil {
		c.confirm.SetEnabled(valid)
	}
	c.logger.Debug("query dialog reevaluated",
		"scope", c.scopeID,
		"category", c.categoryInput,
		"valid", valid,
	)
	return valid
}

// Valid reports whether the category exists in the catalog and the scope id
// is selectable. It has no side effects.
func (c *Controller) Valid() bool {
	return c.CategoryMetadataExists(NormalizeCategory(c.categoryInput)) && c.scopes.Has(c.scopeID)
}

// CategoryMetadataExists reports whether the metadata accessor knows the
// already normalised category. Empty input is never found.
func (c *Controller) CategoryMetadataExists(normalized string) bool {
	if normalized == "" || c.metadata == nil {
		return false
	}
	_, ok := c.metadata.Metadata(normalized)
	return ok
}

// Submit validates the selection and, on success, emits the create event and
// returns its payload. Rejections are *SubmissionError values; the dialog
// stays open and nothing is emitted.
func (c *Controller) Submit() (QueryCreationRequest, error) {
	if c.closed() {
		return QueryCreationRequest{}, ErrClosed
	}
	if c.state != StateReady {
		return QueryCreationRequest{}, ErrNotReady
	}

	fields := c.validator.Validate(c.values())
	if !fields.Valid {
		c.logger.Debug("query submit rejected", "reason", "invalid_fields", "issues", len(fields.Issues))
		c.Reevaluate()
		return QueryCreationRequest{}, &SubmissionError{Kind: ErrInvalidFields, Issues: fields.Issues}
	}

	category := NormalizeCategory(c.categoryInput)
	if !c.CategoryMetadataExists(category) {
		c.logger.Debug("query submit rejected", "reason", "unknown_category", "category", category)
		c.Reevaluate()
		return QueryCreationRequest{}, &SubmissionError{Kind: ErrUnknownCategory, Category: c.categoryInput}
	}

	parent, ok := c.scopes.Object(c.scopeID)
	if !ok {
		c.logger.Debug("query submit rejected", "reason", "unknown_scope", "scope", c.scopeID)
		c.Reevaluate()
		return QueryCreationRequest{}, &SubmissionError{
			Kind:   ErrInvalidFields,
			Issues: []validation.Issue{{Field: FieldScope, Message: "unknown scope"}},
		}
	}

	req := QueryCreationRequest{
		Preference:   Preference{Value: PreferenceValue{Category: category}},
		ParentObject: parent,
	}
	c.state = StateSubmitted
	c.logger.Debug("query submitted", "category", category, "scope", parent.ID)
	c.emitCreate(req)
	return req, nil
}

// Cancel emits the cancel event without validating. It does nothing once a
// terminal event has fired.
func (c *Controller) Cancel() {
	if c.closed() {
		c.logger.Debug("query dialog cancel ignored", "state", c.state.String())
		return
	}
	c.state = StateCancelled
	c.logger.Debug("query dialog cancelled")
	c.emitCancel()
}

func (c *Controller) closed() bool {
	return c.state == StateSubmitted || c.state == StateCancelled
}

func (c *Controller) values() map[string]string {
	return map[string]string{
		FieldScope:    c.scopeID,
		FieldCategory: c.categoryInput,
	}
}

// State returns the lifecycle position.
func (c *Controller) State() State {
	return c.state
}

// Entries returns the selectable scopes in display order.
func (c *Controller) Entries() []scope.Entry {
	return append([]scope.Entry(nil), c.scopes.Entries...)
}

// DefaultScopeID returns the scope selected at initialisation.
func (c *Controller) DefaultScopeID() string {
	return c.scopes.DefaultID
}

// ScopeID returns the selected scope id.
func (c *Controller) ScopeID() string {
	return c.scopeID
}

// ScopeObject returns the live object behind the selected scope.
func (c *Controller) ScopeObject() (*hierarchy.ManagementObject, bool) {
	return c.scopes.Object(c.scopeID)
}

// CategoryInput returns the category exactly as the operator entered it.
func (c *Controller) CategoryInput() string {
	return c.categoryInput
}
