package notification

// Notification types understood by the mobile client.
const (
	TypeNewFollower   = "new_follower"
	TypeNewReview     = "new_review"
	TypeNewInvitation = "new_invitation"
	TypeMovieRelease  = "movie_release"
)

// Screens the client can deep-link to from a notification.
const (
	ScreenNotifications = "notifications"
	ScreenMovieDetails  = "movie_details"
)

// UserSnapshot is one half of a document-change firing on a user document.
// Triggers deliver loosely-typed field maps; SnapshotFromFields narrows them
// to the fields this service reads.
type UserSnapshot struct {
	Username       string
	FCMToken       string
	Followers      []string
	LikedMovies    []int64
	PendingInvites map[string][]string
}

// SnapshotFromFields extracts the relevant fields from a raw document
// snapshot. Missing or mistyped fields become zero values rather than
// errors, so a malformed firing degrades to a no-op instead of failing.
func SnapshotFromFields(fields map[string]any) UserSnapshot {
	snapshot := UserSnapshot{}

	if v, ok := fields["username"].(string); ok {
		snapshot.Username = v
	}
	if v, ok := fields["fcmToken"].(string); ok {
		snapshot.FCMToken = v
	}
	snapshot.Followers = stringSlice(fields["followers"])
	snapshot.LikedMovies = int64Slice(fields["likedMovies"])

	if raw, ok := fields["pendingInvites"].(map[string]any); ok {
		invites := make(map[string][]string, len(raw))
		for ownerID, watchlists := range raw {
			invites[ownerID] = stringSlice(watchlists)
		}
		snapshot.PendingInvites = invites
	}

	return snapshot
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

func int64Slice(v any) []int64 {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]int64, 0, len(items))
	for _, item := range items {
		switch n := item.(type) {
		case float64: // decoded from JSON
			out = append(out, int64(n))
		case int64:
			out = append(out, n)
		case int:
			out = append(out, int64(n))
		}
	}

	return out
}
