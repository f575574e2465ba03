package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const (
	ErrCodeCarry           string = "CARRY"
	ErrCodeIllegalArgument string = "ILLEGAL_ARGUMENT"
)

var (
	// Error that represents a time carry, e.g., a 61st second on a date that
	// doesn't have a leap second.
	//
	// Use errors.Is(err, errs.ErrCarry) to check if an error represents a carry.
	ErrCarry *TaiErr = NewErrfCode(ErrCodeCarry, "Time Carry")

	ErrIllegalArgument *TaiErr = NewErrfCode(ErrCodeIllegalArgument, "Illegal Argument")
)

// Tai Error.
//
//	Use NewErrf(...) to instantiate.
type TaiErr struct {
	code  string // error code.
	msg   string // error message.
	stack string
	err   error
}

func (e *TaiErr) Code() string {
	return e.code
}

func (e *TaiErr) Msg() string {
	return e.msg
}

func (e *TaiErr) StackTrace() string {
	return e.stack
}

func (e *TaiErr) Unwrap() error {
	return e.err
}

func (e *TaiErr) Error() string {
	tok := []string{}
	if e.msg != "" {
		tok = append(tok, e.msg)
	}
	if e.err != nil {
		tok = append(tok, e.err.Error())
	}
	return strings.Join(tok, ", ")
}

// Implements *TaiErr Is check.
//
// Returns true, if both are *TaiErr and the code matches, e.g.,
//
//	err := errs.ErrCarry.WithMsg("second 60 is only valid on a leap second date")
//	errors.Is(err, errs.ErrCarry) // true
func (e *TaiErr) Is(target error) bool {
	if te, ok := target.(*TaiErr); ok && e.code != "" && e.code == te.code {
		return true
	}
	return false
}

func (e *TaiErr) copyNew() *TaiErr {
	n := new(TaiErr)
	n.code = e.code
	n.msg = e.msg
	n.err = e.err
	return n
}

// Create new *TaiErr with the same code but a new message.
func (e *TaiErr) WithMsg(msg string, args ...any) *TaiErr {
	n := e.copyNew()
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	n.msg = msg
	n.withStack()
	return n
}

// Create new *TaiErr to wrap the cause error.
//
// If cause is nil, nil is returned.
func (e *TaiErr) Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	return n
}

func (e *TaiErr) withStack() *TaiErr {
	e.stack = stack(3)
	return e
}

// Create new *TaiErr with message.
func NewErrf(msg string, args ...any) *TaiErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	te := &TaiErr{msg: msg}
	te.withStack()
	return te
}

// Create new *TaiErr with message and error code.
func NewErrfCode(code string, msg string, args ...any) *TaiErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	te := &TaiErr{msg: msg, code: code}
	te.withStack()
	return te
}

// Wrap an error to create new *TaiErr with extra context.
//
// If err is nil, nil is returned.
func Wrapf(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	te := &TaiErr{msg: msg, err: err}
	te.withStack()
	return te
}

// Check if the error represents a time carry.
func IsCarryErr(err error) bool {
	return errors.Is(err, ErrCarry)
}

func stack(skip int) string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	b := strings.Builder{}
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("\n\t%v\n\t\t%v:%v", f.Function, f.File, f.Line))
		if !more {
			break
		}
	}
	return b.String()
}
