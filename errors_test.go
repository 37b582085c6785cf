package bignum

import (
	"errors"
	"testing"
)

func TestStatusIsWarning(t *testing.T) {
	if StatusOK.IsWarning() {
		t.Errorf("StatusOK should not be a warning")
	}
	if StatusDivideByZero.IsWarning() {
		t.Errorf("StatusDivideByZero should not be a warning")
	}
	if !StatusInsecureRNGWarning.IsWarning() {
		t.Errorf("StatusInsecureRNGWarning should be a warning")
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusOK:             "ok",
		StatusDivideByZero:   "divide by zero",
		StatusNoInverse:      "no inverse exists",
		StatusOutOfRange:     "out of range",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
	if Status(999).String() == "" {
		t.Errorf("unknown status should still render a non-empty string")
	}
}

func TestErrorMessages(t *testing.T) {
	e := errDivideByZero("DivMod")
	var be *Error
	if !errors.As(e, &be) {
		t.Fatalf("errDivideByZero should produce *Error")
	}
	if be.Status != StatusDivideByZero {
		t.Errorf("Status = %v, want StatusDivideByZero", be.Status)
	}
	if be.Op != "DivMod" {
		t.Errorf("Op = %q, want DivMod", be.Op)
	}
	if be.Error() == "" {
		t.Errorf("Error() should not be empty")
	}
}

func TestPublicOperationsReturnTypedErrors(t *testing.T) {
	_, _, err := DivMod(NewInt(1), NewInt(0))
	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("DivMod by zero should return *Error")
	}
	if be.Status != StatusDivideByZero {
		t.Errorf("Status = %v, want StatusDivideByZero", be.Status)
	}

	_, err = ModInverse(NewInt(2), NewInt(4))
	if !errors.As(err, &be) {
		t.Fatalf("ModInverse without an inverse should return *Error")
	}
	if be.Status != StatusNoInverse {
		t.Errorf("Status = %v, want StatusNoInverse", be.Status)
	}
}
