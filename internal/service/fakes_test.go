package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/archive"
	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
)

// In-memory repository fakes. They mimic the persistence layer's contract,
// including gorm's sentinel errors for not-found and duplicate-key, so the
// services under test exercise the same error paths as against Postgres.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastLoginAt = &at
	return nil
}

type fakeBurnerRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*model.BurnerProfile
}

func newFakeBurnerRepo() *fakeBurnerRepo {
	return &fakeBurnerRepo{profiles: make(map[uuid.UUID]*model.BurnerProfile)}
}

func (r *fakeBurnerRepo) Create(_ context.Context, profile *model.BurnerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if strings.EqualFold(p.Codename, profile.Codename) {
			return gorm.ErrDuplicatedKey
		}
	}
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

func (r *fakeBurnerRepo) GetByID(_ context.Context, id uuid.UUID) (*model.BurnerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeBurnerRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]model.BurnerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.BurnerProfile
	for _, p := range r.profiles {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeBurnerRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.IsActive = false
	return nil
}

func (r *fakeBurnerRepo) AddPostCount(_ context.Context, id uuid.UUID, delta int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.PostCount += delta
	p.LastPostAt = &at
	return nil
}

type fakePostRepo struct {
	mu      sync.Mutex
	posts   []*model.Post
	burners *fakeBurnerRepo
}

func newFakePostRepo(burners *fakeBurnerRepo) *fakePostRepo {
	return &fakePostRepo{burners: burners}
}

func (r *fakePostRepo) Create(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	cp := *post
	r.posts = append(r.posts, &cp)
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			cp := *p
			if burner, err := r.burners.GetByID(ctx, p.BurnerID); err == nil {
				cp.BurnerProfile = *burner
			}
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePostRepo) List(ctx context.Context, filter repository.PostFilter) ([]model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Post
	for i := len(r.posts) - 1; i >= 0; i-- {
		p := r.posts[i]
		if filter.BurnerID != nil && p.BurnerID != *filter.BurnerID {
			continue
		}
		burner, err := r.burners.GetByID(ctx, p.BurnerID)
		if err != nil {
			continue
		}
		if filter.ShowAIOnly != nil && burner.IsAI != *filter.ShowAIOnly {
			continue
		}
		cp := *p
		cp.BurnerProfile = *burner
		out = append(out, cp)
	}
	return out, nil
}

type fakeGuessRepo struct {
	mu      sync.Mutex
	guesses []*model.IdentityGuess
}

func newFakeGuessRepo() *fakeGuessRepo { return &fakeGuessRepo{} }

func (r *fakeGuessRepo) Create(_ context.Context, guess *model.IdentityGuess) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.guesses {
		if g.GuesserID == guess.GuesserID && g.PostID == guess.PostID {
			return gorm.ErrDuplicatedKey
		}
	}
	guess.ID = uuid.New()
	guess.CreatedAt = time.Now()
	cp := *guess
	r.guesses = append(r.guesses, &cp)
	return nil
}

func (r *fakeGuessRepo) ListByPostID(_ context.Context, postID uuid.UUID) ([]model.IdentityGuess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.IdentityGuess
	for _, g := range r.guesses {
		if g.PostID == postID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGuessRepo) GetByGuesserAndPost(_ context.Context, guesserID, postID uuid.UUID) (*model.IdentityGuess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.guesses {
		if g.GuesserID == guesserID && g.PostID == postID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeInviteRepo struct {
	mu    sync.Mutex
	codes map[string]*model.InviteCode
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{codes: make(map[string]*model.InviteCode)}
}

func (r *fakeInviteRepo) Create(_ context.Context, code *model.InviteCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.codes[code.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	code.ID = uuid.New()
	code.CreatedAt = time.Now()
	cp := *code
	r.codes[code.Code] = &cp
	return nil
}

func (r *fakeInviteRepo) GetByCode(_ context.Context, code string) (*model.InviteCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.codes[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeInviteRepo) List(_ context.Context) ([]model.InviteCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.InviteCode, 0, len(r.codes))
	for _, c := range r.codes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeInviteRepo) MarkUsed(_ context.Context, code string, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.codes[code]
	if !ok || c.UsedByID != nil {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	c.UsedByID = &userID
	c.UsedAt = &now
	return nil
}

type fakeImportRepo struct {
	mu      sync.Mutex
	imports map[uuid.UUID]*model.ArchiveImport
}

func newFakeImportRepo() *fakeImportRepo {
	return &fakeImportRepo{imports: make(map[uuid.UUID]*model.ArchiveImport)}
}

func (r *fakeImportRepo) Create(_ context.Context, imp *model.ArchiveImport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.imports[imp.BurnerID]; ok {
		return gorm.ErrDuplicatedKey
	}
	imp.ID = uuid.New()
	imp.CreatedAt = time.Now()
	cp := *imp
	r.imports[imp.BurnerID] = &cp
	return nil
}

func (r *fakeImportRepo) GetByBurnerID(_ context.Context, burnerID uuid.UUID) (*model.ArchiveImport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	imp, ok := r.imports[burnerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *imp
	return &cp, nil
}

func (r *fakeImportRepo) Update(_ context.Context, imp *model.ArchiveImport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.imports[imp.BurnerID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *imp
	r.imports[imp.BurnerID] = &cp
	return nil
}

// fakeArchiveClient serves canned pages and can inject a failure at a given
// offset to exercise the abort-and-resume path.
type fakeArchiveClient struct {
	accounts     map[string]string // username -> accountID
	profiles     map[string]*archive.Profile
	messages     map[string][]archive.Message // accountID -> all messages
	failAtOffset int                          // -1 disables
	pageCalls    int
}

func newFakeArchiveClient() *fakeArchiveClient {
	return &fakeArchiveClient{
		accounts:     make(map[string]string),
		profiles:     make(map[string]*archive.Profile),
		messages:     make(map[string][]archive.Message),
		failAtOffset: -1,
	}
}

func (c *fakeArchiveClient) AccountID(_ context.Context, username string) (string, error) {
	id, ok := c.accounts[strings.ToLower(username)]
	if !ok {
		return "", archive.ErrNotFound
	}
	return id, nil
}

func (c *fakeArchiveClient) Profile(_ context.Context, username string) (*archive.Profile, error) {
	p, ok := c.profiles[strings.ToLower(username)]
	if !ok {
		return nil, archive.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (c *fakeArchiveClient) MessagesPage(_ context.Context, accountID string, offset, limit int) ([]archive.Message, error) {
	c.pageCalls++
	if c.failAtOffset >= 0 && offset >= c.failAtOffset {
		return nil, context.DeadlineExceeded
	}
	all := c.messages[accountID]
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// fakeLLM implements llms.Model for transformer tests.
type fakeLLM struct {
	response string
	err      error
	lastReq  []llms.MessageContent
}

func (f *fakeLLM) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.lastReq = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeLLM) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
