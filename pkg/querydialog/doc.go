// Package querydialog implements the controller behind the "create query"
// dialog of the management console.
//
// A Controller is built from an object-structure provider and a metadata
// accessor. It snapshots the selectable scopes (brokers then virtual hosts),
// selects the first broker, and tracks the operator's scope and category
// choices. Every change re-derives validity and pushes it to the registered
// ConfirmControl; the cancel control is never gated.
//
// Submit validates in two phases. Field constraints declared by Form are
// checked first through the FormValidator collaborator, then the category is
// looked up in the metadata catalog again, regardless of what the confirm
// control last showed. A successful submit emits the create event with a
// QueryCreationRequest; Cancel emits the cancel event without validating.
// Exactly one terminal event fires per controller.
//
// Controllers are not safe for concurrent use. They expect to be driven from
// a single event loop.
package querydialog
