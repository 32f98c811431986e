package bot

import "strings"

// Admins is the set of user IDs allowed to drive the pause commands
type Admins map[string]struct{}

// ParseAdmins splits the configured ID string into a set. Colon, pipe and
// comma are accepted as separators, sniffed in that order.
func ParseAdmins(s string) Admins {
	sep := ","
	switch {
	case strings.Contains(s, ":"):
		sep = ":"
	case strings.Contains(s, "|"):
		sep = "|"
	}

	admins := Admins{}
	for _, id := range strings.Split(s, sep) {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = struct{}{}
		}
	}
	return admins
}

// Contains reports whether the user is an admin
func (a Admins) Contains(userID string) bool {
	_, ok := a[userID]
	return ok
}
