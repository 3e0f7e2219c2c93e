package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 encoded keyset token from the registration time and id of the
// last ledger entry of a page.
func EncodeToken(registeredAt time.Time, transactionID string) string {
	tokenStr := fmt.Sprintf("%s|%s", registeredAt.UTC().Format(timeFormat), transactionID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	registeredAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (registered_at parse): %w", err)
	}
	return registeredAt, parts[1], nil
}

// Before reports whether an entry sorts after the cursor in newest-first order,
// i.e. whether it belongs on the page following the cursor.
func Before(registeredAt time.Time, transactionID string, cursorAt time.Time, cursorID string) bool {
	if !registeredAt.Equal(cursorAt) {
		return registeredAt.Before(cursorAt)
	}
	return transactionID < cursorID
}
