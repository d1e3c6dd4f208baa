package notification

import (
	"sort"
)

// added returns the elements of after that are absent from before,
// preserving after's order. A nil slice is treated as the empty set.
func added[T comparable](before, after []T) []T {
	if len(after) == 0 {
		return nil
	}

	seen := make(map[T]struct{}, len(before))
	for _, v := range before {
		seen[v] = struct{}{}
	}

	var result []T
	for _, v := range after {
		if _, ok := seen[v]; !ok {
			result = append(result, v)
		}
	}

	return result
}

// firstAddedInvite diffs each owner's invite list independently and returns
// the first owner that gained a watchlist. One firing is assumed to carry a
// single logical invite, so the first match wins. Owners are scanned in
// sorted order to keep the result deterministic for a given input.
func firstAddedInvite(before, after map[string][]string) (ownerID, watchlistID string, ok bool) {
	owners := make([]string, 0, len(after))
	for owner := range after {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	for _, owner := range owners {
		if addedWatchlists := added(before[owner], after[owner]); len(addedWatchlists) > 0 {
			return owner, addedWatchlists[0], true
		}
	}

	return "", "", false
}
