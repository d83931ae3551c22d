// Package render holds presentation helpers shared by dialog front ends:
// mapping rejected submits to field and form messages, and sanitising labels
// that originate from management objects or operator input.
package render
