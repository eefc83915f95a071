package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	user, err := ParseIdentity(`{"id":7,"userName":"ana"}`)
	require.NoError(t, err)
	require.Equal(t, int64(7), user.ID)
	require.Equal(t, "ana", user.UserName)
}

func TestParseIdentityMissing(t *testing.T) {
	_, err := ParseIdentity("")
	require.ErrorIs(t, err, ErrNoIdentity)

	_, err = ParseIdentity("   ")
	require.ErrorIs(t, err, ErrNoIdentity)
}

func TestParseIdentityMalformed(t *testing.T) {
	_, err := ParseIdentity("{not json")
	require.Error(t, err)
}

func TestParseIdentityNoID(t *testing.T) {
	_, err := ParseIdentity(`{"userName":"ana"}`)
	require.Error(t, err)

	_, err = ParseIdentity(`{"id":0}`)
	require.Error(t, err)

	_, err = ParseIdentity(`{"id":-3}`)
	require.Error(t, err)
}
