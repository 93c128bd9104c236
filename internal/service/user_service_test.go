package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/apperr"
	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

func TestCreateOrGetRequiresUsername(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	for _, username := range []string{"", "   "} {
		_, err := svc.CreateOrGet(context.Background(), username)
		require.Error(t, err)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		require.Equal(t, "Username is required", apperr.MessageOf(err))
	}
}

func TestCreateOrGetIsIdempotent(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	first, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", first.Username)
	require.False(t, first.ID.IsZero())

	second, err := svc.CreateOrGet(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	users, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, 1, repo.insertCalls)
}

func TestCreateOrGetTrimsUsername(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	user, err := svc.CreateOrGet(context.Background(), "  bob  ")
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
}

func TestCreateOrGetRecoversFromDuplicateInsert(t *testing.T) {
	// Simulates losing the unique-index race: the first lookup misses, the
	// insert reports a duplicate, and the winner's record is re-read.
	winner := domain.User{ID: primitive.NewObjectID(), Username: "carol"}
	repo := &racingUserRepo{winner: winner}
	svc := NewUserService(repo)

	user, err := svc.CreateOrGet(context.Background(), "carol")
	require.NoError(t, err)
	require.Equal(t, winner.ID, user.ID)
	require.Equal(t, 1, repo.inserts)
	require.Equal(t, 2, repo.lookups)
}

func TestListAllEmptyStore(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	users, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, users)
	require.Empty(t, users)
}

// racingUserRepo misses on the first lookup but serves the winner's record
// afterwards, mimicking a concurrent insert between lookup and insert.
type racingUserRepo struct {
	fakeUserRepo
	winner  domain.User
	lookups int
	inserts int
}

func (r *racingUserRepo) Insert(ctx context.Context, username string) (*domain.User, error) {
	r.inserts++
	return nil, repository.ErrDuplicateUsername
}

func (r *racingUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, repository.ErrNotFound
	}
	found := r.winner
	return &found, nil
}
