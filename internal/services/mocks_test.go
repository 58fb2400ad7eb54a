package services

import (
	"sync"
	"time"

	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repositories for service tests. They are mutex-guarded and
// enforce the same uniqueness the database indexes enforce, so the
// concurrency properties can be exercised without a live store.

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	order []string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (r *mockUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *mockUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if r.users[id].Email == email {
			cp := *r.users[id]
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *mockUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if r.users[id].Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	r.order = append(r.order, user.ID)
	return nil
}

func (r *mockUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *mockUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	for i, id := range r.order {
		if id == userID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile // keyed by user id
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *mockProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *mockProfileRepo) Upsert(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

type mockJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *mockJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *mockJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *mockJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *mockJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *mockJobRepo) ListByEmployer(employerID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *mockJobRepo) ListOpen(limit int) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if j.Status == models.JobStatusOpen && len(out) < limit {
			out = append(out, *j)
		}
	}
	return out, nil
}

type mockApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.Application
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[string]*models.Application)}
}

func (r *mockApplicationRepo) Create(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *mockApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *mockApplicationRepo) FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *mockApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (r *mockApplicationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *mockApplicationRepo) ListByJob(jobID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *mockApplicationRepo) ListByApplicant(applicantID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *mockApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}

type mockConnectionRepo struct {
	mu    sync.Mutex
	conns map[string]*models.Connection
	pairs map[string]string // pair_key -> connection id
	users *mockUserRepo
}

func newMockConnectionRepo(users *mockUserRepo) *mockConnectionRepo {
	return &mockConnectionRepo{
		conns: make(map[string]*models.Connection),
		pairs: make(map[string]string),
		users: users,
	}
}

func (r *mockConnectionRepo) Create(conn *models.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conn.PairKey == "" {
		conn.PairKey = models.PairKeyFor(conn.RequesterID, conn.TargetID)
	}
	if _, exists := r.pairs[conn.PairKey]; exists {
		return repositories.ErrConnectionAlreadyExists
	}
	if conn.ID == "" {
		conn.ID = uuid.NewString()
	}
	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	cp := *conn
	r.conns[conn.ID] = &cp
	r.pairs[conn.PairKey] = conn.ID
	return nil
}

func (r *mockConnectionRepo) FindByID(id string) (*models.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[id]
	if !ok {
		return nil, repositories.ErrConnectionNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *mockConnectionRepo) FindActiveByPair(a, b string) (*models.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.pairs[models.PairKeyFor(a, b)]
	if !ok {
		return nil, repositories.ErrConnectionNotFound
	}
	cp := *r.conns[id]
	return &cp, nil
}

func (r *mockConnectionRepo) Accept(id string) (*models.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[id]
	if !ok || c.Status != models.ConnectionStatusPending {
		return nil, repositories.ErrConnectionNotFound
	}
	c.Status = models.ConnectionStatusAccepted
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (r *mockConnectionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[id]
	if !ok {
		return repositories.ErrConnectionNotFound
	}
	delete(r.pairs, c.PairKey)
	delete(r.conns, id)
	return nil
}

func (r *mockConnectionRepo) ListAcceptedFor(userID string) ([]models.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Connection
	for _, c := range r.conns {
		if c.Status == models.ConnectionStatusAccepted && (c.RequesterID == userID || c.TargetID == userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *mockConnectionRepo) ListPendingFor(userID string) ([]models.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Connection
	for _, c := range r.conns {
		if c.Status == models.ConnectionStatusPending && c.TargetID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *mockConnectionRepo) DiscoverCandidates(userID string, limit int) ([]models.User, error) {
	r.mu.Lock()
	related := make(map[string]bool)
	for _, c := range r.conns {
		if c.RequesterID == userID {
			related[c.TargetID] = true
		}
		if c.TargetID == userID {
			related[c.RequesterID] = true
		}
	}
	r.mu.Unlock()

	r.users.mu.Lock()
	defer r.users.mu.Unlock()
	var out []models.User
	for _, id := range r.users.order {
		if id == userID || related[id] {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *r.users.users[id])
	}
	return out, nil
}

func (r *mockConnectionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}
