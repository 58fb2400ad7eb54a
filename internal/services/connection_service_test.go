package services

import (
	"net/http"
	"sync"
	"testing"

	"giglink_backend/internal/models"
	"giglink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type connectionFixture struct {
	svc      *ConnectionService
	connRepo *mockConnectionRepo
	userRepo *mockUserRepo
	u1, u2   string
	u3, u4   string
}

func newConnectionFixture(t *testing.T) *connectionFixture {
	t.Helper()

	userRepo := newMockUserRepo()
	ids := make([]string, 0, 4)
	for _, email := range []string{"u1@test.dev", "u2@test.dev", "u3@test.dev", "u4@test.dev"} {
		u := &models.User{
			Email:        email,
			PasswordHash: "x",
			Role:         models.UserRoleWorker,
			Status:       models.UserStatusActive,
		}
		require.NoError(t, userRepo.Create(u))
		ids = append(ids, u.ID)
	}

	connRepo := newMockConnectionRepo(userRepo)

	return &connectionFixture{
		svc:      NewConnectionService(connRepo, userRepo, 50),
		connRepo: connRepo,
		userRepo: userRepo,
		u1:       ids[0], u2: ids[1], u3: ids[2], u4: ids[3],
	}
}

func TestRequestConnection(t *testing.T) {
	f := newConnectionFixture(t)

	conn, err := f.svc.Request(f.u1, f.u2)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusPending, conn.Status)
	assert.Equal(t, f.u1, conn.RequesterID)
	assert.Equal(t, f.u2, conn.TargetID)
	assert.NotEmpty(t, conn.ID)
}

func TestRequestConnectionSelf(t *testing.T) {
	f := newConnectionFixture(t)

	_, err := f.svc.Request(f.u1, f.u1)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestRequestConnectionUnknownTarget(t *testing.T) {
	f := newConnectionFixture(t)

	_, err := f.svc.Request(f.u1, "no-such-user")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestRequestConnectionDuplicate(t *testing.T) {
	f := newConnectionFixture(t)

	conn, err := f.svc.Request(f.u1, f.u2)
	require.NoError(t, err)

	// Same direction: conflict carries the existing record.
	_, err = f.svc.Request(f.u1, f.u2)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	existing, ok := appErr.Details.(*models.Connection)
	require.True(t, ok, "conflict details should carry the existing record")
	assert.Equal(t, conn.ID, existing.ID)

	// Opposite direction hits the same unordered-pair constraint.
	_, err = f.svc.Request(f.u2, f.u1)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpCode(t, err))

	assert.Equal(t, 1, f.connRepo.count())
}

func TestRequestConnectionConcurrent(t *testing.T) {
	f := newConnectionFixture(t)

	const callers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// Half the callers race from each direction of the pair.
			var err error
			if n%2 == 0 {
				_, err = f.svc.Request(f.u1, f.u2)
			} else {
				_, err = f.svc.Request(f.u2, f.u1)
			}
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, f.connRepo.count())
}

func TestAcceptConnection(t *testing.T) {
	f := newConnectionFixture(t)

	conn, err := f.svc.Request(f.u1, f.u2)
	require.NoError(t, err)

	// Requester cannot accept their own request.
	_, err = f.svc.Accept(conn.ID, f.u1)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	// Neither can a third party.
	_, err = f.svc.Accept(conn.ID, f.u3)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	accepted, err := f.svc.Accept(conn.ID, f.u2)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusAccepted, accepted.Status)

	// Both parties see each other once accepted.
	views, err := f.svc.ConnectionsOf(f.u1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, f.u2, views[0].UserID)

	views, err = f.svc.ConnectionsOf(f.u2)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, f.u1, views[0].UserID)
}

func TestRejectConnection(t *testing.T) {
	f := newConnectionFixture(t)

	conn, err := f.svc.Request(f.u1, f.u2)
	require.NoError(t, err)

	// Only the target may reject.
	err = f.svc.Reject(conn.ID, f.u1)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	require.NoError(t, f.svc.Reject(conn.ID, f.u2))
	assert.Equal(t, 0, f.connRepo.count())

	// Rejection removes the record, so the pair may try again.
	_, err = f.svc.Request(f.u1, f.u2)
	require.NoError(t, err)
}

func TestActOnUnknownConnection(t *testing.T) {
	f := newConnectionFixture(t)

	_, err := f.svc.Accept("no-such-connection", f.u2)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))

	err = f.svc.Reject("no-such-connection", f.u2)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestPendingRequestsFor(t *testing.T) {
	f := newConnectionFixture(t)

	_, err := f.svc.Request(f.u1, f.u2)
	require.NoError(t, err)
	_, err = f.svc.Request(f.u3, f.u2)
	require.NoError(t, err)
	_, err = f.svc.Request(f.u2, f.u4)
	require.NoError(t, err)

	// Incoming only: the request u2 sent to u4 is not in the list.
	pending, err := f.svc.PendingRequestsFor(f.u2)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, c := range pending {
		assert.Equal(t, f.u2, c.TargetID)
		assert.Equal(t, models.ConnectionStatusPending, c.Status)
	}
}

func TestDiscover(t *testing.T) {
	f := newConnectionFixture(t)

	// u1 <-> u2 accepted, u3 -> u1 pending; both are excluded from u1's view.
	conn, err := f.svc.Request(f.u1, f.u2)
	require.NoError(t, err)
	_, err = f.svc.Accept(conn.ID, f.u2)
	require.NoError(t, err)
	_, err = f.svc.Request(f.u3, f.u1)
	require.NoError(t, err)

	users, err := f.svc.Discover(f.u1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, f.u4, users[0].ID)

	// Stable under repeated calls with no intervening mutation.
	again, err := f.svc.Discover(f.u1)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, users[0].ID, again[0].ID)
}

func TestDiscoverExcludesSelfOnly(t *testing.T) {
	f := newConnectionFixture(t)

	users, err := f.svc.Discover(f.u1)
	require.NoError(t, err)
	assert.Len(t, users, 3)
	for _, u := range users {
		assert.NotEqual(t, f.u1, u.ID)
	}
}
