package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/notificationrepo"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/notification"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// NotificationRepositoryIntegrationTestSuite provides integration tests for the
// notification outbox using PostgreSQL containers.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_ValidNotification_Success() {
	ctx := context.Background()

	entry := suite.createStatusChanged(order.Preparing)
	suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()

	err := suite.repository.Add(ctx, entry)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&notificationrepo.NotificationDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_NotConstructed_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &notification.Notification{})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, notification.ErrNotificationIsNotConstructed)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetUnsent_ReturnsOldestFirstUpToLimit() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	entries := make([]*notification.Notification, 3)
	for i := range entries {
		entries[i] = suite.createStatusChanged(order.Preparing)
		suite.Require().NoError(suite.repository.Add(ctx, entries[i]))
		// Distinct created_at values so ordering is deterministic
		suite.Require().NoError(suite.db.Model(&notificationrepo.NotificationDTO{}).
			Where("id = ?", entries[i].ID().Bytes()).
			Update("created_at", time.Now().UTC().Add(time.Duration(i)*time.Second)).Error)
	}

	pending, err := suite.repository.GetUnsent(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(entries[0].ID(), pending[0].ID())
	suite.Equal(entries[1].ID(), pending[1].ID())
	suite.False(pending[0].IsSent())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetUnsent_SkipsSentEntries() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	sent := suite.createStatusChanged(order.Ready)
	suite.Require().NoError(suite.repository.Add(ctx, sent))
	suite.Require().NoError(suite.repository.MarkSent(ctx, sent.ID(), time.Now().UTC()))

	pendingEntry := suite.createStatusChanged(order.Preparing)
	suite.Require().NoError(suite.repository.Add(ctx, pendingEntry))

	pending, err := suite.repository.GetUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(pendingEntry.ID(), pending[0].ID())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkSent_AlreadySent_ReturnsNotFoundError() {
	ctx := context.Background()

	entry := suite.createStatusChanged(order.Ready)
	suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	suite.Require().NoError(suite.repository.MarkSent(ctx, entry.ID(), time.Now().UTC()))

	err := suite.repository.MarkSent(ctx, entry.ID(), time.Now().UTC())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkSent_NonExistentEntry_ReturnsNotFoundError() {
	err := suite.repository.MarkSent(context.Background(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) createStatusChanged(
	status order.Status,
) *notification.Notification {
	entry, err := notification.NewStatusChanged(kernel.NewUUID(), kernel.NewUUID(), status)
	suite.Require().NoError(err)
	return entry
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
