package intel

import (
	"reflect"
	"testing"
)

func TestMergeUnions(t *testing.T) {
	a := Extract("Pay to fraud@ybl, call +91-9876543210")
	b := Extract("Account 1234567890123456 IFSC SBIN0001234, or fraud@ybl again")

	m := Merge(a, b)

	if !reflect.DeepEqual(m.PaymentHandles, []string{"fraud@ybl"}) {
		t.Errorf("handles = %v", m.PaymentHandles)
	}
	if !contains(m.Phones, "+919876543210") {
		t.Errorf("phones = %v", m.Phones)
	}
	if !contains(m.BankAccounts, "1234567890123456") {
		t.Errorf("accounts = %v", m.BankAccounts)
	}
	if !contains(m.RoutingCodes, "SBIN0001234") {
		t.Errorf("routing codes = %v", m.RoutingCodes)
	}
}

func TestMergeCommutativeIdempotent(t *testing.T) {
	a := Extract("Pay fraud@ybl, account 9876543210123, visit bit.ly/x")
	b := Extract("Call +91-9876543210, PAN ABCDE1234F")

	ab := Merge(a, b)
	ba := Merge(b, a)
	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("merge not commutative:\n ab=%+v\n ba=%+v", ab, ba)
	}

	aa := Merge(a, a)
	if !reflect.DeepEqual(aa, Merge(a, NewBundle())) {
		t.Errorf("merge not idempotent: %+v", aa)
	}
}

func TestMergeRevalidatesAccounts(t *testing.T) {
	a := NewBundle()
	a.BankAccounts = []string{"3456", "9876543210"} // short fragment slipped upstream

	m := Merge(a, NewBundle())
	if !reflect.DeepEqual(m.BankAccounts, []string{"9876543210"}) {
		t.Errorf("accounts = %v, want short fragment dropped", m.BankAccounts)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := Extract("Pay fraud@ybl")
	b := Extract("Call +91-9876543210")
	aCopy := a.Clone()
	bCopy := b.Clone()

	Merge(a, b)

	if !reflect.DeepEqual(a, aCopy) || !reflect.DeepEqual(b, bCopy) {
		t.Error("Merge mutated an input bundle")
	}
}

func TestMergeNilInputs(t *testing.T) {
	b := Extract("Pay fraud@ybl")
	if m := Merge(nil, b); !contains(m.PaymentHandles, "fraud@ybl") {
		t.Errorf("merge with nil lost data: %+v", m)
	}
	if m := Merge(nil, nil); !m.IsEmpty() {
		t.Errorf("merge of nils not empty: %+v", m)
	}
}

func TestHasActionableIntel(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want bool
	}{
		{"payment handle is actionable", "Pay to fraud@ybl", true},
		{"account is actionable", "Account 1234567890123456 here", true},
		{"link is actionable", "Click https://bad.example/login", true},
		{"routing code is actionable", "IFSC SBIN0001234", true},
		{"keywords alone are not", "This is urgent, verify now!", false},
		{"phone alone is not", "Call +91-9876543210", false},
		{"nothing at all", "Hello there", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extract(tc.text).HasActionableIntel(); got != tc.want {
				t.Errorf("HasActionableIntel(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
