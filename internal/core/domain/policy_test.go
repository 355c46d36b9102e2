package domain

import (
	"errors"
	"testing"
)

func TestPolicy_Evaluate(t *testing.T) {
	admin := &Identity{Username: "root", Roles: []string{"ADMIN"}}
	lowerAdmin := &Identity{Username: "root", Roles: []string{"admin"}}
	user := &Identity{Username: "alice", Roles: []string{"USER"}}
	noRoles := &Identity{Username: "bob"}

	tests := []struct {
		name   string
		policy Policy
		id     *Identity
		want   error
	}{
		{"permitAll without identity", PermitAll(), nil, nil},
		{"permitAll with identity", PermitAll(), user, nil},
		{"authenticated without identity", Authenticated(), nil, ErrUnauthenticated},
		{"authenticated empty username", Authenticated(), &Identity{}, ErrUnauthenticated},
		{"authenticated with identity", Authenticated(), noRoles, nil},
		{"hasRole without identity is unauthenticated", HasRole(RoleAdmin), nil, ErrUnauthenticated},
		{"hasRole missing role", HasRole(RoleAdmin), user, ErrForbidden},
		{"hasRole no roles", HasRole(RoleAdmin), noRoles, ErrForbidden},
		{"hasRole match", HasRole(RoleAdmin), admin, nil},
		{"hasRole case-insensitive identity", HasRole(RoleAdmin), lowerAdmin, nil},
		{"hasRole case-insensitive policy", HasRole("admin"), admin, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Evaluate(tt.id)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Fatalf("Evaluate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPolicy_RequiresIdentity(t *testing.T) {
	if PermitAll().RequiresIdentity() {
		t.Fatalf("permitAll should not require identity")
	}
	if !Authenticated().RequiresIdentity() || !HasRole("x").RequiresIdentity() {
		t.Fatalf("authenticated and hasRole must require identity")
	}
}

func TestPolicy_String(t *testing.T) {
	if got := HasRole("admin").String(); got != "hasRole(ADMIN)" {
		t.Fatalf("unexpected String(): %s", got)
	}
}

func TestNotFoundErrors_MatchBase(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrRoleNotFound, ErrProductNotFound, ErrOrderNotFound, ErrOrderItemNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%v should match ErrNotFound", err)
		}
	}
	if errors.Is(ErrUserNotFound, ErrProductNotFound) {
		t.Fatalf("entity not-found errors must stay distinct")
	}
}

func TestNormalizeRole(t *testing.T) {
	if got := NormalizeRole("  admin "); got != "ADMIN" {
		t.Fatalf("NormalizeRole = %q", got)
	}
}
