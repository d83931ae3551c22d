package querydialog

import "github.com/goliatone/go-querydialog/pkg/hierarchy"

// Event names emitted by the controller.
const (
	EventCreate = "create"
	EventCancel = "cancel"
)

// PreferenceValue is the value of the query preference to create.
type PreferenceValue struct {
	Category string `json:"category"`
}

// Preference is the query preference to create.
type Preference struct {
	Value PreferenceValue `json:"value"`
}

// QueryCreationRequest is the create event payload. ParentObject is the live
// object the operator selected as scope.
type QueryCreationRequest struct {
	Preference   Preference                  `json:"preference"`
	ParentObject *hierarchy.ManagementObject `json:"parentObject"`
}

// CreateHandler receives the create event.
type CreateHandler func(QueryCreationRequest)

// CancelHandler receives the cancel event.
type CancelHandler func()

// ConfirmControl is the confirm button affordance. The controller enables it
// only while the current selection is valid.
type ConfirmControl interface {
	SetEnabled(enabled bool)
}

// ConfirmControlFunc adapts a function to ConfirmControl.
type ConfirmControlFunc func(enabled bool)

// SetEnabled implements ConfirmControl.
func (fn ConfirmControlFunc) SetEnabled(enabled bool) {
	if fn != nil {
		fn(enabled)
	}
}

// OnCreate registers a create handler. Handlers run in registration order.
func (c *Controller) OnCreate(fn CreateHandler) {
	if c == nil || fn == nil {
		return
	}
	c.createHandlers = append(c.createHandlers, fn)
}

// OnCancel registers a cancel handler. Handlers run in registration order.
func (c *Controller) OnCancel(fn CancelHandler) {
	if c == nil || fn == nil {
		return
	}
	c.cancelHandlers = append(c.cancelHandlers, fn)
}

func (c *Controller) emitCreate(req QueryCreationRequest) {
	c.logger.Debug("query dialog event", "event", EventCreate, "handlers", len(c.createHandlers))
	for _, fn := range c.createHandlers {
		fn(req)
	}
}

func (c *Controller) emitCancel() {
	c.logger.Debug("query dialog event", "event", EventCancel, "handlers", len(c.cancelHandlers))
	for _, fn := range c.cancelHandlers {
		fn()
	}
}
