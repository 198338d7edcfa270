// Package membership authorizes ledger operations against group membership.
package membership

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotAMember matches every *NotAMemberError via errors.Is.
var ErrNotAMember = errors.New("user is not a member of this group")

// NotAMemberError is returned when a user is not in the group they are
// trying to read or write.
type NotAMemberError struct {
	GroupID string
	UserID  string
}

func (e *NotAMemberError) Error() string {
	return fmt.Sprintf("user %s is not a member of group %s", e.UserID, e.GroupID)
}

// Is reports whether target is ErrNotAMember.
func (e *NotAMemberError) Is(target error) bool {
	return target == ErrNotAMember
}

// Reader answers membership questions from current state.
type Reader interface {
	IsGroupMember(ctx context.Context, groupID, userID string) (bool, error)
}

// Gate checks membership before any group read or write.
type Gate struct {
	reader Reader
}

// NewGate creates a Gate backed by the given membership reader.
func NewGate(reader Reader) *Gate {
	return &Gate{reader: reader}
}

// IsMember reports whether userID currently belongs to groupID.
// A group that does not exist has no members.
func (g *Gate) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	if groupID == "" || userID == "" {
		return false, nil
	}
	ok, err := g.reader.IsGroupMember(ctx, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return ok, nil
}

// RequireMember returns a *NotAMemberError unless userID belongs to groupID.
func (g *Gate) RequireMember(ctx context.Context, groupID, userID string) error {
	ok, err := g.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &NotAMemberError{GroupID: groupID, UserID: userID}
	}
	return nil
}

// RequireMembers checks every user in turn and fails on the first non-member.
func (g *Gate) RequireMembers(ctx context.Context, groupID string, userIDs ...string) error {
	for _, id := range userIDs {
		if err := g.RequireMember(ctx, groupID, id); err != nil {
			return err
		}
	}
	return nil
}
