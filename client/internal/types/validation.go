package types

import (
	"errors"
	"fmt"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrInvalidArgument is wrapped by every client-side validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidateID rejects empty or whitespace-only identifiers.
func ValidateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s id is required", ErrInvalidArgument, kind)
	}
	return nil
}

// ValidateIDs rejects empty bulk selections and blank members.
func ValidateIDs(kind string, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: select at least one %s", ErrInvalidArgument, kind)
	}
	for _, id := range ids {
		if err := ValidateID(kind, id); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRejectionReason requires feedback for the vendor.
func ValidateRejectionReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidArgument)
	}
	return nil
}

// ValidateUserStatus accepts only the statuses the bulk endpoint knows.
func ValidateUserStatus(status string) error {
	switch status {
	case UserActive, UserInactive:
		return nil
	default:
		return fmt.Errorf("%w: user status %q (want %s or %s)", ErrInvalidArgument, status, UserActive, UserInactive)
	}
}

// ValidateProductStatus accepts only review statuses.
func ValidateProductStatus(status string) error {
	switch status {
	case ProductPending, ProductApproved, ProductRejected:
		return nil
	default:
		return fmt.Errorf("%w: product status %q", ErrInvalidArgument, status)
	}
}

// ValidateLogin requires both credentials.
func ValidateLogin(req LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidArgument)
	}
	return nil
}
