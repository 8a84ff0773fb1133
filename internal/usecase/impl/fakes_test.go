package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fitlife/config"
	"fitlife/internal/domain/entity"
	"fitlife/internal/domain/repository"
	"fitlife/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
			TokenTTL:   7 * 24 * time.Hour,
			SessionTTL: 2 * time.Hour,
		},
	}
}

// fakeHasher replaces bcrypt with a transparent scheme so tests stay fast.
// CheckDummy invocations are counted so timing-equalization paths can be
// asserted on.
type fakeHasher struct {
	mu         sync.Mutex
	dummyCalls int
	hashErr    error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (h *fakeHasher) CheckDummy(_ string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dummyCalls++
}

func (h *fakeHasher) ValidHash(hash string) bool {
	return strings.HasPrefix(hash, "hashed:")
}

func (h *fakeHasher) dummyCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.dummyCalls
}

// fakeTokenSource mints deterministic sequential tokens.
type fakeTokenSource struct {
	seq         int
	generateErr error
}

func (s *fakeTokenSource) Generate() (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	s.seq++

	return fmt.Sprintf("token-%04d", s.seq), nil
}

// fakeUserRepo is an in-memory UserRepository with injectable failures.
type fakeUserRepo struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*entity.User
	weights       map[uuid.UUID][]*entity.WeightEntry
	tokenLookups  int
	findByEmail   error
	findByToken   error
	replaceToken  error
	clearToken    error
	createErr     error
	updateErr     error
	listErr       error
	countErr      error
	upsertWeight  error
	weightHistErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uuid.UUID]*entity.User),
		weights: make(map[uuid.UUID][]*entity.WeightEntry),
	}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByEmail != nil {
		return nil, r.findByEmail
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByToken(_ context.Context, token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokenLookups++
	if r.findByToken != nil {
		return nil, r.findByToken
	}
	for _, user := range r.users {
		if user.Token != nil && user.Token.Value == token {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	token := stored.Token
	copied := *user
	copied.Token = token
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) ReplaceToken(_ context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.replaceToken != nil {
		return r.replaceToken
	}
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Token = &entity.APIToken{Value: token, ExpiresAt: expiresAt}

	return nil
}

func (r *fakeUserRepo) ClearToken(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clearToken != nil {
		return r.clearToken
	}
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Token = nil

	return nil
}

func (r *fakeUserRepo) UpsertWeightEntry(_ context.Context, entry *entity.WeightEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.upsertWeight != nil {
		return r.upsertWeight
	}
	entries := r.weights[entry.UserID]
	for _, existing := range entries {
		if existing.Date.Equal(entry.Date) {
			existing.Weight = entry.Weight

			return nil
		}
	}
	copied := *entry
	r.weights[entry.UserID] = append(entries, &copied)

	return nil
}

func (r *fakeUserRepo) ListWeightHistory(_ context.Context, userID uuid.UUID) ([]*entity.WeightEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.weightHistErr != nil {
		return nil, r.weightHistErr
	}
	entries := make([]*entity.WeightEntry, 0, len(r.weights[userID]))
	for _, entry := range r.weights[userID] {
		copied := *entry
		entries = append(entries, &copied)
	}

	return entries, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}

	return users, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.countErr != nil {
		return 0, r.countErr
	}

	return int64(len(r.users)), nil
}

// fakeAdminRepo is an in-memory AdminRepository with injectable failures.
type fakeAdminRepo struct {
	mu             sync.Mutex
	admins         map[uuid.UUID]*entity.Admin
	findByUsername error
	findByID       error
	createErr      error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[uuid.UUID]*entity.Admin)}
}

func (r *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*entity.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByUsername != nil {
		return nil, r.findByUsername
	}
	for _, admin := range r.admins {
		if admin.Username == username {
			copied := *admin

			return &copied, nil
		}
	}

	return nil, repository.ErrAdminNotFound
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByID != nil {
		return nil, r.findByID
	}
	admin, ok := r.admins[id]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	copied := *admin

	return &copied, nil
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	admin.CreatedAt = time.Now()
	copied := *admin
	r.admins[admin.ID] = &copied

	return nil
}

// fakeSessionStore is an in-memory SessionStore that records destroyed IDs.
type fakeSessionStore struct {
	mu         sync.Mutex
	seq        int
	sessions   map[string]*entity.AdminSession
	destroyed  []string
	createErr  error
	getErr     error
	destroyErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*entity.AdminSession)}
}

func (s *fakeSessionStore) Create(_ context.Context, session *entity.AdminSession) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return "", s.createErr
	}
	s.seq++
	id := fmt.Sprintf("session-%04d", s.seq)
	copied := *session
	copied.ID = id
	s.sessions[id] = &copied

	return id, nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*entity.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return nil, s.getErr
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	copied := *session

	return &copied, nil
}

func (s *fakeSessionStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyErr != nil {
		return s.destroyErr
	}
	delete(s.sessions, id)
	s.destroyed = append(s.destroyed, id)

	return nil
}

func (s *fakeSessionStore) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]

	return ok
}

// fakeRepoFactory hands out the shared in-memory repositories, mimicking
// repositories bound to one transaction.
type fakeRepoFactory struct {
	users      *fakeUserRepo
	admins     *fakeAdminRepo
	exercises  repository.ExerciseRepository
	foodLogs   repository.FoodLogRepository
	dailyStats repository.DailyStatRepository
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository         { return f.users }
func (f *fakeRepoFactory) NewAdminRepository() repository.AdminRepository       { return f.admins }
func (f *fakeRepoFactory) NewExerciseRepository() repository.ExerciseRepository { return f.exercises }
func (f *fakeRepoFactory) NewFoodLogRepository() repository.FoodLogRepository   { return f.foodLogs }
func (f *fakeRepoFactory) NewDailyStatRepository() repository.DailyStatRepository {
	return f.dailyStats
}

// fakeTxManager runs the callback directly against the shared repositories.
type fakeTxManager struct {
	factory *fakeRepoFactory
	execErr error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}

// fakeExerciseRepo is an in-memory ExerciseRepository.
type fakeExerciseRepo struct {
	mu        sync.Mutex
	exercises map[uuid.UUID]*entity.Exercise
	listErr   error
	createErr error
	deleteErr error
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[uuid.UUID]*entity.Exercise)}
}

func (r *fakeExerciseRepo) ListByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) ([]*entity.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*entity.Exercise
	for _, exercise := range r.exercises {
		if exercise.UserID == userID && exercise.Date.Equal(date) {
			copied := *exercise
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *entity.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}
	copied := *exercise
	r.exercises[exercise.ID] = &copied

	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr != nil {
		return r.deleteErr
	}
	exercise, ok := r.exercises[id]
	if !ok || exercise.UserID != userID {
		return repository.ErrExerciseNotFound
	}
	delete(r.exercises, id)

	return nil
}

// fakeDailyStatRepo is an in-memory DailyStatRepository keyed by (user, date).
type fakeDailyStatRepo struct {
	mu        sync.Mutex
	stats     map[uuid.UUID]map[time.Time]*entity.DailyStat
	listErr   error
	upsertErr error
}

func newFakeDailyStatRepo() *fakeDailyStatRepo {
	return &fakeDailyStatRepo{stats: make(map[uuid.UUID]map[time.Time]*entity.DailyStat)}
}

func (r *fakeDailyStatRepo) ListRecent(_ context.Context, userID uuid.UUID, days int) ([]*entity.DailyStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	cutoff := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
	var result []*entity.DailyStat
	for date, stat := range r.stats[userID] {
		if !date.Before(cutoff) {
			copied := *stat
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *fakeDailyStatRepo) Upsert(_ context.Context, stat *entity.DailyStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.upsertErr != nil {
		return r.upsertErr
	}
	byDate, ok := r.stats[stat.UserID]
	if !ok {
		byDate = make(map[time.Time]*entity.DailyStat)
		r.stats[stat.UserID] = byDate
	}
	copied := *stat
	byDate[stat.Date] = &copied

	return nil
}
