package domain

// PolicyKind enumerates the predicates a route can require.
type PolicyKind int

const (
	PolicyPermitAll PolicyKind = iota
	PolicyAuthenticated
	PolicyHasRole
)

// Policy is the authorization rule attached to a single route.
type Policy struct {
	Kind PolicyKind
	Role string
}

func PermitAll() Policy { return Policy{Kind: PolicyPermitAll} }

func Authenticated() Policy { return Policy{Kind: PolicyAuthenticated} }

func HasRole(role string) Policy {
	return Policy{Kind: PolicyHasRole, Role: NormalizeRole(role)}
}

// RequiresIdentity reports whether the caller must present a valid token.
func (p Policy) RequiresIdentity() bool {
	return p.Kind != PolicyPermitAll
}

// Evaluate checks id against the policy. A nil identity always fails with
// ErrUnauthenticated before any role is looked at.
func (p Policy) Evaluate(id *Identity) error {
	if p.Kind == PolicyPermitAll {
		return nil
	}
	if id == nil || id.Username == "" {
		return ErrUnauthenticated
	}
	if p.Kind == PolicyHasRole && !id.HasRole(p.Role) {
		return ErrForbidden
	}
	return nil
}

func (p Policy) String() string {
	switch p.Kind {
	case PolicyPermitAll:
		return "permitAll"
	case PolicyAuthenticated:
		return "authenticated"
	default:
		return "hasRole(" + p.Role + ")"
	}
}
