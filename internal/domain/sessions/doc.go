// Package sessions defines the per-visitor state of the analysis pages: the last plaintext
// entered, its size and the table sort state, along with the contracts to persist it.
package sessions
