package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBadInput(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("decode: %w", ErrInvalidImageInput), true},
		{fmt.Errorf("%w: x", ErrMalformedHash), true},
		{fmt.Errorf("%w: %w", ErrComposition, ErrInvalidCategory), true},
		{ErrInvalidCharge, true},
		{ErrComposition, false},
		{ErrHashing, false},
		{ErrNotFound, false},
		{errors.New("disk full"), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := IsBadInput(c.err); got != c.want {
			t.Errorf("IsBadInput(%v): got %v, want %v", c.err, got, c.want)
		}
	}
}

func TestErrMalformedHash_IsHashing(t *testing.T) {
	if !errors.Is(ErrMalformedHash, ErrHashing) {
		t.Fatal("ErrMalformedHash should match ErrHashing")
	}
}

func TestParseFailurePolicy(t *testing.T) {
	for in, want := range map[string]FailurePolicy{"": FailureAbort, "abort": FailureAbort, "skip": FailureSkip} {
		got, err := ParseFailurePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseFailurePolicy(%q): got %q, %v", in, got, err)
		}
	}
	if _, err := ParseFailurePolicy("retry"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
