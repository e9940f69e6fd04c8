package util

import (
	"testing"
)

func TestValidateSessionParams_Valid(t *testing.T) {
	err := ValidateSessionParams("Backend Developer", "3 years", "Node, SQL")
	if err != nil {
		t.Errorf("ValidateSessionParams() error = %v, want nil", err)
	}
}

func TestValidateSessionParams_Missing(t *testing.T) {
	testCases := []struct {
		role, experience, topics string
	}{
		{"", "3 years", "Node"},
		{"Backend Developer", "", "Node"},
		{"Backend Developer", "3 years", ""},
		{"   ", "3 years", "Node"},
	}

	for _, tc := range testCases {
		err := ValidateSessionParams(tc.role, tc.experience, tc.topics)
		if err == nil {
			t.Errorf("ValidateSessionParams(%q, %q, %q) error = nil, want error",
				tc.role, tc.experience, tc.topics)
		}
	}
}

func TestValidateQuestionCount_Valid(t *testing.T) {
	testCases := []int{1, 3, 10, 50}

	for _, n := range testCases {
		err := ValidateQuestionCount(n)
		if err != nil {
			t.Errorf("ValidateQuestionCount(%d) error = %v, want nil", n, err)
		}
	}
}

func TestValidateQuestionCount_Invalid(t *testing.T) {
	testCases := []int{0, -1, 51, 1000}

	for _, n := range testCases {
		err := ValidateQuestionCount(n)
		if err == nil {
			t.Errorf("ValidateQuestionCount(%d) error = nil, want error", n)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@example.com", "first.last@sub.example.org"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}

	invalid := []string{"", "plainaddress", "@missing-local.com", "no-at.example.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	valid := []string{"abcdefg1", "Passw0rd", "longerpassword123"}
	for _, pwd := range valid {
		if err := ValidatePassword(pwd); err != nil {
			t.Errorf("ValidatePassword(%q) error = %v, want nil", pwd, err)
		}
	}

	invalid := []string{"", "short1", "onlyletters", "12345678", "waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaytoolong1"}
	for _, pwd := range invalid {
		if err := ValidatePassword(pwd); err == nil {
			t.Errorf("ValidatePassword(%q) error = nil, want error", pwd)
		}
	}
}
