package postgres

import (
	"context"
	"testing"
	"time"

	"link-tracker/internal/database"
	"link-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StoreTestSuite runs the Postgres stores against a real database.
type StoreTestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *tcpostgres.PostgresContainer
	pool        *pgxpool.Pool
	links       *LinkStore
	clicks      *ClickStore
	visitors    *VisitorLedger
}

func (s *StoreTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.pool, err = database.OpenPostgres(s.ctx, dsn, 4)
	require.NoError(s.T(), err)
	require.NoError(s.T(), database.MigratePostgres(s.pool))

	s.links = NewLinkStore(s.pool)
	s.clicks = NewClickStore(s.pool)
	s.visitors = NewVisitorLedger(s.pool)
}

func (s *StoreTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		s.pgContainer.Terminate(s.ctx)
	}
}

func (s *StoreTestSuite) TearDownTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE tracked_links CASCADE`)
	require.NoError(s.T(), err)
}

func TestStoreTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) createLink(code string, status domain.LinkStatus) *domain.TrackedLink {
	link := domain.NewTrackedLink("", "https://example.com/"+code, code, "", status,
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(s.T(), s.links.Create(s.ctx, link))
	return link
}

func (s *StoreTestSuite) TestCreate_DuplicateCode() {
	// Arrange
	s.createLink("dup123", domain.StatusActive)
	other := domain.NewTrackedLink("", "https://other.example", "dup123", "", domain.StatusActive, time.Now())

	// Act
	err := s.links.Create(s.ctx, other)

	// Assert
	assert.ErrorIs(s.T(), err, domain.ErrShortCodeExists)
}

func (s *StoreTestSuite) TestFindByShortCode_RoundTrips() {
	// Arrange
	link := s.createLink("find123", domain.StatusDraft)

	// Act
	found, err := s.links.FindByShortCode(s.ctx, "find123")

	// Assert
	require.NoError(s.T(), err)
	assert.Equal(s.T(), link.ID, found.ID)
	assert.Equal(s.T(), domain.StatusDraft, found.Status)
	assert.True(s.T(), link.CreatedAt.Equal(found.CreatedAt))
	assert.Nil(s.T(), found.LastClickedAt)
}

func (s *StoreTestSuite) TestFindByShortCode_NotFound() {
	_, err := s.links.FindByShortCode(s.ctx, "missing")

	assert.ErrorIs(s.T(), err, domain.ErrLinkNotFound)
}

func (s *StoreTestSuite) TestIncrementCounters_ConcurrentClicks() {
	// Arrange
	link := s.createLink("hot", domain.StatusActive)
	base := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	const n = 32

	// Act
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			errs <- s.links.IncrementCounters(s.ctx, link.ID, 1, i%4 == 0, base.Add(time.Duration(i)*time.Minute))
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(s.T(), <-errs)
	}

	// Assert
	got, err := s.links.FindByID(s.ctx, link.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(n), got.TotalClicks)
	assert.Equal(s.T(), int64(n/4), got.UniqueVisitors)
	require.NotNil(s.T(), got.LastClickedAt)
	assert.True(s.T(), base.Add((n-1)*time.Minute).Equal(*got.LastClickedAt))
}

func (s *StoreTestSuite) TestClicks_WindowAndBreakdown() {
	// Arrange
	link := s.createLink("stats", domain.StatusActive)
	events := []domain.ClickEvent{
		{ClickTime: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), IPAddress: "10.0.0.1", Browser: "Chrome"},
		{ClickTime: time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC), IPAddress: "10.0.0.1", Browser: "Firefox"},
		{ClickTime: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC), IPAddress: "10.0.0.2", Browser: "Chrome"},
		{ClickTime: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), IPAddress: "10.0.0.3", Browser: "Safari"},
	}
	for i := range events {
		events[i].LinkID = link.ID
		require.NoError(s.T(), s.clicks.Append(s.ctx, &events[i]))
	}
	w, err := domain.ParseWindow("", "2024-03-01", "2024-03-03", time.Now())
	require.NoError(s.T(), err)

	// Act
	total, err := s.clicks.CountInWindow(s.ctx, w)
	require.NoError(s.T(), err)
	unique, err := s.clicks.CountDistinctIPsInWindow(s.ctx, w)
	require.NoError(s.T(), err)
	groups, err := s.clicks.Breakdown(s.ctx, w, domain.DimensionBrowser)
	require.NoError(s.T(), err)
	exists, err := s.clicks.Exists(s.ctx)
	require.NoError(s.T(), err)

	// Assert
	assert.Equal(s.T(), int64(3), total)
	assert.Equal(s.T(), int64(2), unique)
	assert.Equal(s.T(), []domain.GroupCount{{Value: "Chrome", Count: 2}, {Value: "Firefox", Count: 1}}, groups)
	assert.True(s.T(), exists)
}

func (s *StoreTestSuite) TestDelete_CascadesHistory() {
	// Arrange
	link := s.createLink("gone", domain.StatusActive)
	require.NoError(s.T(), s.clicks.Append(s.ctx, &domain.ClickEvent{LinkID: link.ID, ClickTime: time.Now(), IPAddress: "10.0.0.9"}))
	first, err := s.visitors.MarkSeen(s.ctx, link.ID, "10.0.0.9")
	require.NoError(s.T(), err)
	require.True(s.T(), first)

	// Act
	err = s.links.Delete(s.ctx, link.ID)

	// Assert
	require.NoError(s.T(), err)
	count, err := s.clicks.Count(s.ctx)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), count)
	assert.ErrorIs(s.T(), s.links.Delete(s.ctx, link.ID), domain.ErrLinkNotFound)
}

func (s *StoreTestSuite) TestMarkSeen_SecondVisitIsNotFirst() {
	// Arrange
	link := s.createLink("seen", domain.StatusActive)

	// Act
	first, err := s.visitors.MarkSeen(s.ctx, link.ID, "192.0.2.1")
	require.NoError(s.T(), err)
	second, err := s.visitors.MarkSeen(s.ctx, link.ID, "192.0.2.1")
	require.NoError(s.T(), err)

	// Assert
	assert.True(s.T(), first)
	assert.False(s.T(), second)
}

func (s *StoreTestSuite) TestUnmark_NextVisitIsFirstAgain() {
	// Arrange
	link := s.createLink("unmark", domain.StatusActive)
	_, err := s.visitors.MarkSeen(s.ctx, link.ID, "192.0.2.1")
	require.NoError(s.T(), err)

	// Act
	require.NoError(s.T(), s.visitors.Unmark(s.ctx, link.ID, "192.0.2.1"))
	first, err := s.visitors.MarkSeen(s.ctx, link.ID, "192.0.2.1")

	// Assert
	require.NoError(s.T(), err)
	assert.True(s.T(), first)
}
