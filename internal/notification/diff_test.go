package notification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddedReturnsNewElements(t *testing.T) {
	result := added([]string{"a"}, []string{"a", "b", "c"})
	require.Equal(t, []string{"b", "c"}, result)
}

func TestAddedIdenticalSets(t *testing.T) {
	result := added([]string{"a", "b"}, []string{"a", "b"})
	if len(result) != 0 {
		t.Fatalf("expected no additions, got %v", result)
	}
}

func TestAddedFromEmpty(t *testing.T) {
	result := added(nil, []string{"x", "y"})
	require.Equal(t, []string{"x", "y"}, result)
}

func TestAddedToEmpty(t *testing.T) {
	result := added([]string{"x"}, nil)
	if len(result) != 0 {
		t.Fatalf("expected no additions, got %v", result)
	}
}

func TestAddedInt64(t *testing.T) {
	result := added([]int64{1, 2}, []int64{2, 3})
	require.Equal(t, []int64{3}, result)
}

func TestFirstAddedInvite(t *testing.T) {
	ownerID, watchlistID, ok := firstAddedInvite(
		map[string][]string{},
		map[string][]string{"owner1": {"wl1"}},
	)
	if !ok {
		t.Fatal("expected an added invite")
	}
	if ownerID != "owner1" || watchlistID != "wl1" {
		t.Fatalf("got (%s, %s), want (owner1, wl1)", ownerID, watchlistID)
	}
}

func TestFirstAddedInviteNoChange(t *testing.T) {
	invites := map[string][]string{"owner1": {"wl1"}}

	_, _, ok := firstAddedInvite(invites, invites)
	if ok {
		t.Fatal("expected no added invite")
	}
}

func TestFirstAddedInviteExistingOwner(t *testing.T) {
	ownerID, watchlistID, ok := firstAddedInvite(
		map[string][]string{"owner1": {"wl1"}},
		map[string][]string{"owner1": {"wl1", "wl2"}},
	)
	if !ok {
		t.Fatal("expected an added invite")
	}
	if ownerID != "owner1" || watchlistID != "wl2" {
		t.Fatalf("got (%s, %s), want (owner1, wl2)", ownerID, watchlistID)
	}
}

func TestFirstAddedInviteDeterministicAcrossOwners(t *testing.T) {
	before := map[string][]string{}
	after := map[string][]string{
		"zed":  {"wlz"},
		"anna": {"wla"},
	}

	for range 20 {
		ownerID, watchlistID, ok := firstAddedInvite(before, after)
		if !ok {
			t.Fatal("expected an added invite")
		}
		if ownerID != "anna" || watchlistID != "wla" {
			t.Fatalf("got (%s, %s), want (anna, wla)", ownerID, watchlistID)
		}
	}
}
