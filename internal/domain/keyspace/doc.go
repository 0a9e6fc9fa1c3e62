// Package keyspace computes the size of a key space (2^bits) with exact
// big-integer arithmetic and renders it in compact scientific notation
// such as "1.16e77".
//
// All functions are pure and safe for concurrent use.
package keyspace
