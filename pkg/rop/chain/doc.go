// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Check: fail the chain when a check on the value returns an error
// - Ensure: run side effects on success or failure without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
