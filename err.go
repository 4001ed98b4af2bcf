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

import (
	"fmt"
	"strings"
)

// Err is a decode/encode failure carrying a human-readable message plus
// a stack of context frames pushed by named codecs and combinators as
// the failure bubbles up through composition.
//
// Err implements the standard error interface, so it composes with
// errors.Is/errors.As the same way the rest of the Go ecosystem does;
// Wrap preserves an underlying cause for Unwrap.
type Err struct {
	msg     string
	context []string
	cause   error
}

// NewErr builds a bare Err with no context frames.
func NewErr(msg string) *Err {
	return &Err{msg: msg}
}

// Errf builds an Err from a format string, the fmt.Errorf-style idiom
// used throughout the codebase for ad hoc failures.
func Errf(format string, args ...any) *Err {
	return &Err{msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Err whose message is msg and whose cause is err,
// preserving err for errors.Unwrap/errors.Is/errors.As. This is how
// adapter backend failures (signer, cipher, certificate) are lifted
// into the codec error taxonomy.
func Wrap(msg string, err error) *Err {
	return &Err{msg: msg, cause: err}
}

// InsufficientBits builds the InsufficientBits error kind: a decoder
// needed expected bits but only have were available.
func InsufficientBits(expected, have uint64, context ...string) *Err {
	return &Err{
		msg:     fmt.Sprintf("insufficient bits: expected %d, have %d", expected, have),
		context: append([]string(nil), context...),
	}
}

// MatchingDiscriminatorNotFound builds the error kind a discriminated
// union decoder raises when the decoded discriminator value d matches
// none of the registered cases.
func MatchingDiscriminatorNotFound(d any, context ...string) *Err {
	return &Err{
		msg:     fmt.Sprintf("could not find matching case for discriminator %v", d),
		context: append([]string(nil), context...),
	}
}

// WithContext returns a copy of e with name pushed as the outermost
// context frame. Repeated calls nest outside-in, so the frame closest
// to the root codec ends up first in the rendered message.
func (e *Err) WithContext(name string) *Err {
	if e == nil {
		return nil
	}
	next := make([]string, 0, len(e.context)+1)
	next = append(next, name)
	next = append(next, e.context...)
	return &Err{msg: e.msg, context: next, cause: e.cause}
}

// Context returns the pushed context frames, outermost first.
func (e *Err) Context() []string {
	return append([]string(nil), e.context...)
}

// Message returns the bare failure message, without context frames.
func (e *Err) Message() string {
	return e.msg
}

// Error renders "frame1/frame2/.../message".
func (e *Err) Error() string {
	if len(e.context) == 0 {
		return e.msg
	}
	return strings.Join(e.context, "/") + "/" + e.msg
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Err) Unwrap() error {
	return e.cause
}
