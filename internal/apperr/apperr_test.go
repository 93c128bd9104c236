package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("User not found"))

	require.Equal(t, KindNotFound, KindOf(err))
	require.Equal(t, "User not found", MessageOf(err))
}

func TestForeignErrorsDefaultToStore(t *testing.T) {
	err := errors.New("connection reset")

	require.Equal(t, KindStore, KindOf(err))
	require.Equal(t, "", MessageOf(err))
}

func TestStoreKeepsCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := Store("insert user", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "insert user: socket closed", err.Error())
}
