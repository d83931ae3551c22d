// Package validation implements the form-validation collaborator: a
// synchronous pass/fail check of submitted values against the constraints a
// model.FormModel declares.
package validation
