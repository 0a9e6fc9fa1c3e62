// Package v1 implements version 1 of the REST API with gin handlers.
package v1
