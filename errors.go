package bignum

import "fmt"

// Status is the flat integer status space every core operation reports
// through. Zero means success; values below 200 are hard errors, values
// at or above 200 are advisory warnings that accompany a successful
// result (see Status.IsWarning).
type Status int

// Reserved status values, per the external error-code contract this
// package exposes to its callers.
const (
	StatusOK Status = 0

	StatusMemoryExceeded Status = 10
	StatusAlloc          Status = 11
	StatusFree           Status = 12
	StatusBufferTooSmall Status = 13
	StatusInvalidChar    Status = 14

	StatusBadArg1 Status = 21
	StatusBadArg2 Status = 22
	StatusBadArg3 Status = 23
	StatusBadArg4 Status = 24

	StatusOutOfRange      Status = 25
	StatusDivideByZero    Status = 26
	StatusNegativeArgument Status = 27
	StatusNoInverse       Status = 28

	StatusUnexpectedInternal Status = 100
	StatusNotImplemented     Status = 101

	StatusInsecureRNGWarning Status = 200
)

// IsWarning reports whether s is an advisory status: the operation that
// produced it completed and its result is usable, but the caller should
// take note (currently only StatusInsecureRNGWarning).
func (s Status) IsWarning() bool {
	return s >= 200
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMemoryExceeded:
		return "memory exceeded"
	case StatusAlloc:
		return "allocation failed"
	case StatusFree:
		return "free failed"
	case StatusBufferTooSmall:
		return "buffer too small"
	case StatusInvalidChar:
		return "invalid character"
	case StatusBadArg1:
		return "bad argument 1"
	case StatusBadArg2:
		return "bad argument 2"
	case StatusBadArg3:
		return "bad argument 3"
	case StatusBadArg4:
		return "bad argument 4"
	case StatusOutOfRange:
		return "out of range"
	case StatusDivideByZero:
		return "divide by zero"
	case StatusNegativeArgument:
		return "negative argument"
	case StatusNoInverse:
		return "no inverse exists"
	case StatusUnexpectedInternal:
		return "unexpected internal error"
	case StatusNotImplemented:
		return "not implemented"
	case StatusInsecureRNGWarning:
		return "insecure RNG fallback used"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Error is the error type every failing BigInt operation returns. It
// carries the reserved Status plus a human-readable Op/Msg pair so
// callers can log or compare on Status without parsing strings.
type Error struct {
	Status Status
	Op     string
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("bignum: %s: %s", e.Op, e.Status)
	}
	return fmt.Sprintf("bignum: %s: %s: %s", e.Op, e.Status, e.Msg)
}

// newErr builds an *Error, formatting Msg like fmt.Sprintf.
func newErr(op string, status Status, format string, args ...any) *Error {
	return &Error{Status: status, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// errDivideByZero, errNegativeArgument, etc. are the recurring domain
// errors, built once per op so call sites stay terse.
func errDivideByZero(op string) error {
	return newErr(op, StatusDivideByZero, "division by zero")
}

func errNegativeArgument(op, detail string) error {
	return newErr(op, StatusNegativeArgument, "%s", detail)
}

func errOutOfRange(op, detail string) error {
	return newErr(op, StatusOutOfRange, "%s", detail)
}

func errMemoryExceeded(op string, digits int) error {
	return newErr(op, StatusMemoryExceeded, "requested %d digits exceeds capacity ceiling", digits)
}

func errNoInverse(op string) error {
	return newErr(op, StatusNoInverse, "gcd(a, m) != 1")
}

func errInternal(op, detail string) error {
	return newErr(op, StatusUnexpectedInternal, "%s", detail)
}
