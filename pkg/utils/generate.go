package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateCheckoutToken issues the session token that keys one draft.
func GenerateCheckoutToken() string {
	return uuid.New().String()
}

// GenerateOrderNumber creates a human-facing order number with timestamp.
// Format: ORD-YYYYMMDD-HHMMSS-XXXXXXXX. The suffix is a uuid fragment:
// order_number is UNIQUE, so the suffix must not collide for orders
// committed within the same second.
func GenerateOrderNumber() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := uuid.New().String()[:8]

	return fmt.Sprintf("ORD-%s-%s-%s", datePart, timePart, randomPart)
}
