// Package app implements the application services: cipher operations,
// the analysis table, performance curves, keyspace reports and sessions.
package app
