package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
)

type postFixture struct {
	svc     PostService
	users   *fakeUserRepo
	burners *fakeBurnerRepo
	posts   *fakePostRepo
	llm     *fakeLLM
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	users := newFakeUserRepo()
	burners := newFakeBurnerRepo()
	posts := newFakePostRepo(burners)
	llm := &fakeLLM{response: "transformed"}
	transformer := NewLLMTransformer(llm, 0.7, 500, zap.NewNop())
	return &postFixture{
		svc:     NewPostService(posts, burners, users, transformer, true, zap.NewNop()),
		users:   users,
		burners: burners,
		posts:   posts,
		llm:     llm,
	}
}

func (f *postFixture) seedUser(t *testing.T, username string, postAccess bool) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "x", HasPostAccess: postAccess}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *postFixture) seedBurner(t *testing.T, userID uuid.UUID, codename string) *model.BurnerProfile {
	t.Helper()
	burner := &model.BurnerProfile{
		UserID:      userID,
		Codename:    codename,
		Personality: "cold, precise",
		Avatar:      "ghost.png",
		Background:  "unknown",
		IsActive:    true,
	}
	require.NoError(t, f.burners.Create(context.Background(), burner))
	return burner
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("persists both original and transformed text", func(t *testing.T) {
		f := newPostFixture(t)
		user := f.seedUser(t, "agent7", true)
		burner := f.seedBurner(t, user.ID, "GHOST")
		f.llm.response = "GHOST voice: rendezvous shifts to 0900"

		post, err := f.svc.Create(ctx, user.ID, burner.ID, "meeting moved to 9am")
		require.NoError(t, err)
		assert.Equal(t, "meeting moved to 9am", post.OriginalContent)
		assert.Equal(t, "GHOST voice: rendezvous shifts to 0900", post.TransformedContent)
	})

	t.Run("bumps the profile post counter", func(t *testing.T) {
		f := newPostFixture(t)
		user := f.seedUser(t, "agent7", true)
		burner := f.seedBurner(t, user.ID, "GHOST")

		_, err := f.svc.Create(ctx, user.ID, burner.ID, "first")
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, user.ID, burner.ID, "second")
		require.NoError(t, err)

		got, err := f.burners.GetByID(ctx, burner.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.PostCount)
		assert.NotNil(t, got.LastPostAt)
	})

	t.Run("keeps original text when the transformer fails", func(t *testing.T) {
		f := newPostFixture(t)
		user := f.seedUser(t, "agent7", true)
		burner := f.seedBurner(t, user.ID, "GHOST")
		f.llm.err = context.DeadlineExceeded

		post, err := f.svc.Create(ctx, user.ID, burner.ID, "meeting moved to 9am")
		require.NoError(t, err)
		assert.Equal(t, post.OriginalContent, post.TransformedContent)
	})

	t.Run("rejects posting through someone else's burner", func(t *testing.T) {
		f := newPostFixture(t)
		owner := f.seedUser(t, "agent7", true)
		intruder := f.seedUser(t, "agent8", true)
		burner := f.seedBurner(t, owner.ID, "GHOST")

		_, err := f.svc.Create(ctx, intruder.ID, burner.ID, "hijack attempt")
		assert.ErrorIs(t, err, ErrBurnerNotOwned)
	})

	t.Run("rejects posting without post access", func(t *testing.T) {
		f := newPostFixture(t)
		user := f.seedUser(t, "agent7", false)
		burner := f.seedBurner(t, user.ID, "GHOST")

		_, err := f.svc.Create(ctx, user.ID, burner.ID, "no access")
		assert.ErrorIs(t, err, ErrNoPostAccess)
	})

	t.Run("rejects posting through a deactivated burner", func(t *testing.T) {
		f := newPostFixture(t)
		user := f.seedUser(t, "agent7", true)
		burner := f.seedBurner(t, user.ID, "GHOST")
		require.NoError(t, f.burners.Deactivate(ctx, burner.ID))

		_, err := f.svc.Create(ctx, user.ID, burner.ID, "too late")
		assert.ErrorIs(t, err, ErrBurnerInactive)
	})

	t.Run("unknown burner is reported as not found", func(t *testing.T) {
		f := newPostFixture(t)
		user := f.seedUser(t, "agent7", true)

		_, err := f.svc.Create(ctx, user.ID, uuid.New(), "nowhere")
		assert.ErrorIs(t, err, ErrBurnerNotFound)
	})
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by the owning profile's AI flag", func(t *testing.T) {
		f := newPostFixture(t)
		user := f.seedUser(t, "agent7", true)

		human := f.seedBurner(t, user.ID, "GHOST")
		ai := &model.BurnerProfile{
			UserID: user.ID, Codename: "ORACLE", Personality: "p", Avatar: "a",
			Background: "b", IsActive: true, IsAI: true,
		}
		require.NoError(t, f.burners.Create(ctx, ai))

		_, err := f.svc.Create(ctx, user.ID, human.ID, "human post")
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, user.ID, ai.ID, "ai post")
		require.NoError(t, err)

		showAI := true
		aiOnly, err := f.svc.List(ctx, repository.PostFilter{ShowAIOnly: &showAI})
		require.NoError(t, err)
		require.Len(t, aiOnly, 1)
		assert.Equal(t, ai.ID, aiOnly[0].BurnerID)

		all, err := f.svc.List(ctx, repository.PostFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
