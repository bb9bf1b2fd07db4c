package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadownet/burnerhub/internal/model"
)

type guessFixture struct {
	svc     GuessService
	users   *fakeUserRepo
	burners *fakeBurnerRepo
	posts   *fakePostRepo
	guesses *fakeGuessRepo
}

func newGuessFixture(t *testing.T) *guessFixture {
	t.Helper()
	users := newFakeUserRepo()
	burners := newFakeBurnerRepo()
	posts := newFakePostRepo(burners)
	guesses := newFakeGuessRepo()
	return &guessFixture{
		svc:     NewGuessService(guesses, posts, burners, users),
		users:   users,
		burners: burners,
		posts:   posts,
		guesses: guesses,
	}
}

// seedPost wires a user, their burner and one post, returning all three IDs.
func (f *guessFixture) seedPost(t *testing.T, username, codename string) (*model.User, *model.Post) {
	t.Helper()
	ctx := context.Background()
	owner := &model.User{Username: username, PasswordHash: "x", HasPostAccess: true}
	require.NoError(t, f.users.Create(ctx, owner))

	burner := &model.BurnerProfile{
		UserID: owner.ID, Codename: codename, Personality: "p",
		Avatar: "a", Background: "b", IsActive: true,
	}
	require.NoError(t, f.burners.Create(ctx, burner))

	post := &model.Post{
		BurnerID:           burner.ID,
		OriginalContent:    "meeting moved to 9am",
		TransformedContent: "rendezvous shifts to 0900",
	}
	require.NoError(t, f.posts.Create(ctx, post))
	return owner, post
}

func (f *guessFixture) seedGuesser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "x"}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func TestCreateGuess(t *testing.T) {
	ctx := context.Background()

	t.Run("naming the burner's owner is correct", func(t *testing.T) {
		f := newGuessFixture(t)
		owner, post := f.seedPost(t, "agent7", "GHOST")
		guesser := f.seedGuesser(t, "watcher")

		guess, err := f.svc.Create(ctx, guesser.ID, post.ID, "agent7")
		require.NoError(t, err)
		assert.True(t, guess.IsCorrect)
		assert.Equal(t, owner.ID, guess.GuessedUserID)
	})

	t.Run("naming anyone else is incorrect", func(t *testing.T) {
		f := newGuessFixture(t)
		_, post := f.seedPost(t, "agent7", "GHOST")
		guesser := f.seedGuesser(t, "watcher")
		bystander := f.seedGuesser(t, "bystander")

		guess, err := f.svc.Create(ctx, guesser.ID, post.ID, bystander.Username)
		require.NoError(t, err)
		assert.False(t, guess.IsCorrect)
	})

	t.Run("second guess on the same post is rejected", func(t *testing.T) {
		f := newGuessFixture(t)
		_, post := f.seedPost(t, "agent7", "GHOST")
		guesser := f.seedGuesser(t, "watcher")
		f.seedGuesser(t, "bystander")

		_, err := f.svc.Create(ctx, guesser.ID, post.ID, "bystander")
		require.NoError(t, err)

		// The retry names someone else. It still bounces, so the guesser
		// cannot binary-search the author.
		_, err = f.svc.Create(ctx, guesser.ID, post.ID, "agent7")
		assert.ErrorIs(t, err, ErrDuplicateGuess)
	})

	t.Run("unknown guessed username is rejected", func(t *testing.T) {
		f := newGuessFixture(t)
		_, post := f.seedPost(t, "agent7", "GHOST")
		guesser := f.seedGuesser(t, "watcher")

		_, err := f.svc.Create(ctx, guesser.ID, post.ID, "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown post is rejected", func(t *testing.T) {
		f := newGuessFixture(t)
		guesser := f.seedGuesser(t, "watcher")

		_, err := f.svc.Create(ctx, guesser.ID, uuid.New(), "agent7")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("correctness never leaks through the JSON shape", func(t *testing.T) {
		f := newGuessFixture(t)
		_, post := f.seedPost(t, "agent7", "GHOST")
		guesser := f.seedGuesser(t, "watcher")

		guess, err := f.svc.Create(ctx, guesser.ID, post.ID, "agent7")
		require.NoError(t, err)
		require.True(t, guess.IsCorrect)

		raw, err := json.Marshal(guess)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "is_correct")
		assert.NotContains(t, string(raw), "IsCorrect")
		// Neither does the resolved account id; a guess must not double as a
		// username-to-id lookup.
		assert.NotContains(t, string(raw), "guessed_user_id")
		assert.NotContains(t, string(raw), guess.GuessedUserID.String())
	})
}

func TestListGuessesByPost(t *testing.T) {
	ctx := context.Background()

	t.Run("returns guesses for the post only", func(t *testing.T) {
		f := newGuessFixture(t)
		_, post := f.seedPost(t, "agent7", "GHOST")
		_, other := f.seedPost(t, "agent8", "ORACLE")
		a := f.seedGuesser(t, "watcher-a")
		b := f.seedGuesser(t, "watcher-b")

		_, err := f.svc.Create(ctx, a.ID, post.ID, "agent7")
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, b.ID, post.ID, "agent8")
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, a.ID, other.ID, "agent7")
		require.NoError(t, err)

		guesses, err := f.svc.ListByPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, guesses, 2)
	})

	t.Run("unknown post is rejected", func(t *testing.T) {
		f := newGuessFixture(t)
		_, err := f.svc.ListByPost(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}
