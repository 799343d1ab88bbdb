package rankdomain

import (
	"errors"
	"testing"
)

func ladderFixture() []LadderRole {
	return []LadderRole{
		{RoleID: "", Name: "No Role", MinPoints: 0},
		{RoleID: "r-100", Name: "Rookie", MinPoints: 100},
		{RoleID: "r-500", Name: "Regular", MinPoints: 500},
		{RoleID: "r-2000", Name: "Elite", MinPoints: 2000},
	}
}

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		wantName string
	}{
		{name: "zero score resolves floor", score: 0, wantName: "No Role"},
		{name: "below first threshold", score: 99, wantName: "No Role"},
		{name: "exact threshold", score: 100, wantName: "Rookie"},
		{name: "between tiers", score: 1999, wantName: "Regular"},
		{name: "top tier", score: 999999, wantName: "Elite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ResolveRole(ladderFixture(), tt.score)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role.Name != tt.wantName {
				t.Errorf("ResolveRole(score=%d) = %q, want %q", tt.score, role.Name, tt.wantName)
			}
			if role.MinPoints > tt.score {
				t.Errorf("resolved threshold %d exceeds score %d", role.MinPoints, tt.score)
			}
		})
	}
}

func TestResolveRoleMisconfiguration(t *testing.T) {
	tests := []struct {
		name   string
		ladder []LadderRole
	}{
		{name: "empty ladder", ladder: nil},
		{
			name: "missing floor",
			ladder: []LadderRole{
				{RoleID: "r-100", Name: "Rookie", MinPoints: 100},
			},
		},
		{
			name: "duplicate thresholds",
			ladder: []LadderRole{
				{Name: "No Role", MinPoints: 0},
				{RoleID: "a", Name: "First", MinPoints: 100},
				{RoleID: "b", Name: "Second", MinPoints: 100},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRole(tt.ladder, 50)
			if !errors.Is(err, ErrLadderMisconfigured) {
				t.Fatalf("expected ErrLadderMisconfigured, got %v", err)
			}
		})
	}
}

func TestResolveRoleNegativeScore(t *testing.T) {
	if _, err := ResolveRole(ladderFixture(), -1); err == nil {
		t.Fatal("expected error for negative score")
	}
}

func TestResolveRoleDoesNotMutateInput(t *testing.T) {
	ladder := []LadderRole{
		{RoleID: "r-500", Name: "Regular", MinPoints: 500},
		{Name: "No Role", MinPoints: 0},
	}
	if _, err := ResolveRole(ladder, 600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ladder[0].Name != "Regular" {
		t.Errorf("input ladder reordered: %v", ladder)
	}
}

func TestValidateLadder(t *testing.T) {
	if err := ValidateLadder(ladderFixture()); err != nil {
		t.Errorf("valid ladder rejected: %v", err)
	}
	if err := ValidateLadder(nil); !errors.Is(err, ErrLadderMisconfigured) {
		t.Errorf("expected ErrLadderMisconfigured, got %v", err)
	}
}
