// Package model defines the declared form model used by dialog controllers.
// A FormModel lists the inputs a dialog exposes together with their native
// constraints (required, minLength/maxLength, pattern). Rules carry string
// parameters so they serialise deterministically; the validation package
// interprets them when the form is submitted. Business rules, such as whether
// a category exists in a metadata catalog, are not expressed here.
package model
