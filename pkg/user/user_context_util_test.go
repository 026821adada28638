package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentUserRoundTrip(t *testing.T) {
	u := User{Id: 7, Uid: "abc", DisplayName: "Ada"}
	ctx := WithUser(context.Background(), u)

	current, err := CurrentUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, u, current)

	id, err := CurrentId(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestCurrentUserMissingFromContext(t *testing.T) {
	_, err := CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)

	_, err = CurrentId(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)
}
