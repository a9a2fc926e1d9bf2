// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T].
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Switch/Map/Try: move a successful value to the next step
// - FailOnError: keep the value but fail when a check returns an error
// - Guard: run a step and turn a panic into a failure
// - DoubleTee: side effects for success and failure
// - Finally: reduce to a concrete value via success/error handlers
package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/isproduct/pkg/rop"
)

// PanicError is the failure produced by Guard when the guarded step panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	}
	return rop.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

// Guard runs step and converts a panic inside it into a *PanicError failure.
func Guard[T any](ctx context.Context, step func(ctx context.Context) rop.Result[T]) (res rop.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = rop.Fail[T](&PanicError{Value: r})
		}
	}()
	return step(ctx)
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	} else if onError != nil {
		onError(ctx, input.Err())
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
