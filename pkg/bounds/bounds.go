// Package bounds holds the bounds-check policies consulted by the checked
// operations of substring.View (At and Substr).
//
// A policy is chosen as a type argument, never at run time:
//
//	v := substring.FromString[bounds.Panic]("hello")
//
// Every policy is a zero-size struct; the view calls it through its type
// parameter so no interface value is built on the hot path.
package bounds

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var ErrOutOfRange = errors.New("out of range")

// Policy decides what happens when a checked condition is false.
// ok is the condition that must hold, msg names it ("pos > size").
type Policy interface {
	OutOfRange(ok bool, msg string)
}

// RangeError is the panic value raised by Panic.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("substring: %s: %s", ErrOutOfRange, e.Msg)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Ignore trusts the caller. A failed check falls through to the slice
// arithmetic, where the Go runtime reports it with its own panic.
type Ignore struct{}

func (Ignore) OutOfRange(bool, string) {}

// Panic raises *RangeError. Use Catch to turn it into an error.
type Panic struct{}

func (Panic) OutOfRange(ok bool, msg string) {
	if !ok {
		panic(&RangeError{Msg: msg})
	}
}

// Abort logs the failed check and terminates the process through the
// standard logrus logger (its ExitFunc decides how).
type Abort struct{}

func (Abort) OutOfRange(ok bool, msg string) {
	if !ok {
		logrus.WithField("check", msg).Fatal("substring: index out of range")
	}
}

// Catch runs fn and returns the *RangeError it panicked with, if any.
// Other panics are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RangeError)
			if !ok {
				panic(r)
			}
			err = re
		}
	}()
	fn()
	return nil
}
