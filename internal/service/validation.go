package service

import (
	"fmt"
	"net/mail"
	"strings"
)

// Field length limits enforced before any repository call.
const (
	usernameMinLen = 3
	usernameMaxLen = 50

	passwordMinLen = 6
	passwordMaxLen = 72 // bcrypt input limit

	fullNameMinLen = 2
	fullNameMaxLen = 255

	titleMaxLen       = 200
	descriptionMaxLen = 1000
)

func validateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return "", fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidDataProvided, usernameMinLen, usernameMaxLen)
	}

	return username, nil
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: malformed email address", ErrInvalidDataProvided)
	}

	return email, nil
}

func validatePassword(password string) error {
	if len(password) < passwordMinLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, passwordMinLen)
	}
	if len(password) > passwordMaxLen {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidDataProvided, passwordMaxLen)
	}

	return nil
}

// validateFullName trims an optional display name. An empty value is allowed
// and clears the name; a non-empty value must fit the length bounds.
func validateFullName(fullName string) (string, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "", nil
	}
	if len(fullName) < fullNameMinLen || len(fullName) > fullNameMaxLen {
		return "", fmt.Errorf("%w: full name must be %d-%d characters", ErrInvalidDataProvided, fullNameMinLen, fullNameMaxLen)
	}

	return fullName, nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > titleMaxLen {
		return "", fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidDataProvided, titleMaxLen)
	}

	return title, nil
}

// validateDescription trims and bounds an optional description. The returned
// pointer preserves the presence semantics of the input: nil stays nil, and a
// present-but-blank value comes back as a pointer to the empty string so that
// updates can clear the column.
func validateDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*description)
	if len(trimmed) > descriptionMaxLen {
		return nil, fmt.Errorf("%w: description must be at most %d characters", ErrInvalidDataProvided, descriptionMaxLen)
	}

	return &trimmed, nil
}
