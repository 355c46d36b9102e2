package domain

// Identity is the caller resolved from a bearer token.
type Identity struct {
	Username string
	Roles    []string
}

// HasRole reports whether the identity carries role, compared case-insensitively.
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	want := NormalizeRole(role)
	for _, r := range i.Roles {
		if NormalizeRole(r) == want {
			return true
		}
	}
	return false
}
