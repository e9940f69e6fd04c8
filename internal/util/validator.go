package util

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidateSessionParams checks the free-text generation parameters of a
// session. They are not interpreted, only required to be non-empty.
func ValidateSessionParams(role, experience, topicsToFocus string) error {
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("role is required")
	}
	if strings.TrimSpace(experience) == "" {
		return fmt.Errorf("experience is required")
	}
	if strings.TrimSpace(topicsToFocus) == "" {
		return fmt.Errorf("topicsToFocus is required")
	}
	return nil
}

// ValidateQuestionCount checks the batch size for a generation call.
func ValidateQuestionCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("number of questions must be positive")
	}
	if n > 50 {
		return fmt.Errorf("number of questions must not exceed 50")
	}
	return nil
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword enforces a minimal password policy: 8-32 chars with
// at least one letter and one digit.
func ValidatePassword(pwd string) error {
	if len(pwd) < 8 || len(pwd) > 32 {
		return fmt.Errorf("password must be 8-32 characters")
	}
	var hasLetter, hasDigit bool
	for _, ch := range pwd {
		switch {
		case ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z':
			hasLetter = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain letters and digits")
	}
	return nil
}
