package chain

import (
	"context"

	"github.com/ib-77/isproduct/pkg/rop"
	"github.com/ib-77/isproduct/pkg/rop/solo"
)

// Chain carries a step result and the context the next steps run with.
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

// FromValue starts a chain with a successful value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then moves to the result of onSuccess; failures pass through untouched.
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry turns the error returned by onSuccess into a failure.
func ThenTry[T, U any](c *Chain[T], onSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, onSuccess))
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Check keeps the value unless check returns an error, which becomes the failure.
func (c *Chain[T]) Check(check func(context.Context, T) error) *Chain[T] {
	return Start(c.ctx, solo.FailOnError(c.ctx, c.result, check))
}

// Ensure runs onSuccess or onFailure without changing the result; either may be nil.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) *Chain[T] {
	return Start(c.ctx, solo.DoubleTee(c.ctx, c.result, onSuccess, onFailure))
}

// Finally reduces the chain to a plain value.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
