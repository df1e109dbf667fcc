package validators

import "regexp"

// usernamePattern: a letter followed by 7 to 29 letters, digits or
// underscores (8 to 30 characters in total).
var usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{7,29}$`)

// IsValidUsername reports whether username satisfies the username policy.
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}
