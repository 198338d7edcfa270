package membership

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	members map[string][]string
	err     error
	calls   int
}

func (f *fakeReader) IsGroupMember(_ context.Context, groupID, userID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	for _, m := range f.members[groupID] {
		if m == userID {
			return true, nil
		}
	}
	return false, nil
}

func newFake() *fakeReader {
	return &fakeReader{members: map[string][]string{
		"g1": {"alice", "bob"},
	}}
}

func TestIsMember(t *testing.T) {
	gate := NewGate(newFake())
	ctx := context.Background()

	tests := []struct {
		group, user string
		want        bool
	}{
		{"g1", "alice", true},
		{"g1", "bob", true},
		{"g1", "mallory", false},
		{"missing", "alice", false},
		{"", "alice", false},
		{"g1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.group+"/"+tt.user, func(t *testing.T) {
			got, err := gate.IsMember(ctx, tt.group, tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireMember(t *testing.T) {
	gate := NewGate(newFake())
	ctx := context.Background()

	assert.NoError(t, gate.RequireMember(ctx, "g1", "alice"))

	err := gate.RequireMember(ctx, "g1", "mallory")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAMember)

	var nmErr *NotAMemberError
	require.True(t, errors.As(err, &nmErr))
	assert.Equal(t, "g1", nmErr.GroupID)
	assert.Equal(t, "mallory", nmErr.UserID)
}

func TestRequireMembers(t *testing.T) {
	fake := newFake()
	gate := NewGate(fake)
	ctx := context.Background()

	assert.NoError(t, gate.RequireMembers(ctx, "g1", "alice", "bob"))

	err := gate.RequireMembers(ctx, "g1", "alice", "mallory", "bob")
	var nmErr *NotAMemberError
	require.True(t, errors.As(err, &nmErr))
	assert.Equal(t, "mallory", nmErr.UserID)
}

func TestRequireMember_ReaderError(t *testing.T) {
	boom := errors.New("database is locked")
	gate := NewGate(&fakeReader{err: boom})

	err := gate.RequireMember(context.Background(), "g1", "alice")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotAMember, "store failures are not authorization failures")
}
