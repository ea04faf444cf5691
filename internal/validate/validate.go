package validate

import (
	"github.com/google/uuid"
)

const maxPaymentCodeLength = 64

func ValidateOrderID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ValidatePaymentCode accepts latin letters, digits and dashes.
func ValidatePaymentCode(code string) bool {
	if code == "" || len(code) > maxPaymentCodeLength {
		return false
	}
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
