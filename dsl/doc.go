// Package dsl provides the builder surface for declaring queryskema
// schemas: per-kind field constructors and a fluent schema builder that
// funnels into queryskema.NewSchema.
package dsl
