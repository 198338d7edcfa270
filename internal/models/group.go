package models

// Group is a set of members who share expenses and settle payments together.
// Every member takes part in the equal split of every expense in the group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// CreatedBy is the user ID of the admin who created the group.
	CreatedBy string

	// Members is the list of users in this group.
	Members []Member

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Member is a user as seen from inside a group.
type Member struct {
	UserID   string
	Username string
}

// MemberIDs returns the user IDs of the group's members in order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.UserID
	}
	return ids
}
