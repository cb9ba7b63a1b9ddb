package codec

import (
	"fmt"
	"strings"
)

// Dialect identifies a wire format.
type Dialect string

// Supported dialects.
const (
	Classic Dialect = "classic"
	V4      Dialect = "v4"
)

// ParseDialect accepts the dialect names used on the command line:
// "v4", "4" and "latest" select V4; "classic", "v3", "3", "v2", "2", "v1"
// and "1" select Classic.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "v4", "4", "latest":
		return V4, nil
	case "classic", "v3", "3", "v2", "2", "v1", "1":
		return Classic, nil
	}
	return "", fmt.Errorf("invalid dialect %q: valid values are latest, v4, 4, classic, v3, 3", s)
}

// String returns the dialect name.
func (d Dialect) String() string { return string(d) }
