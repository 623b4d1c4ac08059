// Package filter holds the dashboard filter selection and applies it to
// record collections.
//
// State changes only through Reduce, a pure (state, action) -> state
// function. An empty selection is the identity filter: it lets every value
// through. Store keeps the single live State of a session and replaces it
// wholesale on every dispatch.
package filter
