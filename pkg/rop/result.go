package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one pipeline step: either a value or an error.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the failure of one step over to a step of another type,
// keeping the original id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the value; the zero value of T on failure.
func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// OrElse returns the value on success and def otherwise.
func (r Result[T]) OrElse(def T) T {
	if r.isSuccess {
		return r.result
	}
	return def
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result that was never set to success or failure.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
