// Package product checks whether two integers read from a file multiply to a
// third and writes the verdict to another file.
//
// The work is split into three stages: ReadInput, IsProduct and WriteResult.
// Pipeline runs them in order; a failing stage is logged, replaced with its
// default value and the next stage still runs.
package product
