// Copyright (C) 2024 The scodec Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package scodec

// Attempt is either a successful value of type A or a failure carrying
// an *Err. It never panics and never throws; MustGet is the sole
// exception-raising escape hatch, meant for callers who have already
// established (by construction) that the attempt cannot fail.
type Attempt[A any] struct {
	ok    bool
	value A
	err   *Err
}

// Successful wraps a value as a successful Attempt.
func Successful[A any](v A) Attempt[A] {
	return Attempt[A]{ok: true, value: v}
}

// Failure wraps an *Err as a failed Attempt.
func Failure[A any](err *Err) Attempt[A] {
	return Attempt[A]{err: err}
}

// IsSuccessful reports whether the attempt holds a value.
func (a Attempt[A]) IsSuccessful() bool { return a.ok }

// Failed reports whether the attempt holds an error.
func (a Attempt[A]) Failed() bool { return !a.ok }

// Get returns the held value and a nil error on success, or the zero
// value and the held error on failure.
func (a Attempt[A]) Get() (A, *Err) {
	return a.value, a.err
}

// MustGet returns the held value, panicking with the held error if the
// attempt failed. This is the "decodeValidValue"/"encodeValid"
// convenience wrapper named in the core contract: the only place on
// the encode/decode path that raises rather than returning a value.
// (The integer codec constructors panic on an unsupported bit width.)
func (a Attempt[A]) MustGet() A {
	if !a.ok {
		panic(a.err)
	}
	return a.value
}

// Err returns the held error, or nil on success.
func (a Attempt[A]) Err() *Err {
	return a.err
}

// WithContext pushes a context frame onto a failed attempt; it is a
// no-op on a successful one.
func (a Attempt[A]) WithContext(name string) Attempt[A] {
	if a.ok {
		return a
	}
	return Attempt[A]{err: a.err.WithContext(name)}
}

// MapAttempt transforms a successful value with f, passing failures
// through unchanged. Go has no generic methods with a fresh type
// parameter, so type-changing transforms on Attempt are free functions,
// the same shape the bit-range helpers in internal/bitops use.
func MapAttempt[A, B any](a Attempt[A], f func(A) B) Attempt[B] {
	if a.ok {
		return Successful(f(a.value))
	}
	return Failure[B](a.err)
}

// FlatMapAttempt sequences two attempts, short-circuiting on the first
// failure.
func FlatMapAttempt[A, B any](a Attempt[A], f func(A) Attempt[B]) Attempt[B] {
	if !a.ok {
		return Failure[B](a.err)
	}
	return f(a.value)
}

// MapErrAttempt transforms a failed attempt's error, passing successes
// through unchanged.
func MapErrAttempt[A any](a Attempt[A], f func(*Err) *Err) Attempt[A] {
	if a.ok {
		return a
	}
	return Failure[A](f(a.err))
}
