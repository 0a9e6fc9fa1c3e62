// Package analysis builds the algorithm comparison table: one row per catalog entry with
// key size, reference time and brute-force keyspace, sortable by any column.
package analysis
