package domain

import (
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClaim_IsSelf(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	claim := Claim{Subject: id, Role: RoleAdmin}

	cases := []struct {
		target string
		want   bool
	}{
		{id, true},
		{strings.ToUpper(id), true},
		{primitive.NewObjectID().Hex(), false},
	}
	for _, tc := range cases {
		got, err := claim.IsSelf(tc.target)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.target, err)
		}
		if got != tc.want {
			t.Fatalf("IsSelf(%s) = %v, want %v", tc.target, got, tc.want)
		}
	}

	for _, bad := range []string{"", "abc", strings.Repeat("z", 24)} {
		if _, err := claim.IsSelf(bad); !errors.Is(err, primitive.ErrInvalidHex) {
			t.Fatalf("IsSelf(%q): expected ErrInvalidHex, got %v", bad, err)
		}
	}

	// A subject that is not an ObjectID never matches a stored account.
	if got, err := (Claim{Subject: "u1"}).IsSelf(id); err != nil || got {
		t.Fatalf("expected no match for foreign subject, got %v %v", got, err)
	}
}
