// Package tui drives a querydialog.Controller from the terminal. Prompts go
// through the PromptDriver interface; the default implementation uses
// survey, and tests script a stub driver instead.
package tui
