package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StageDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DELETE FROM order_stages").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM orders").Error)
}

func (suite *OrderRepositoryTestSuite) newOrder(departments int) *order.Order {
	departmentIDs := make([]kernel.UUID, 0, departments)
	for i := 0; i < departments; i++ {
		departmentIDs = append(departmentIDs, kernel.NewUUID())
	}
	aggregate, err := order.NewOrder(kernel.NewUUID(), departmentIDs)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	aggregate := suite.newOrder(3)

	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().True(restored.IsEqual(aggregate))
	suite.Equal(order.New, restored.Status())
	suite.Equal(order.ResourceNew, restored.ResourceStatus())
	suite.Nil(restored.Rating())

	stages := restored.Stages()
	suite.Require().Len(stages, 3)
	for i, stage := range stages {
		suite.Equal(i+1, stage.InOrder())
		suite.True(stage.DepartmentID().IsEqual(aggregate.Stages()[i].DepartmentID()))
		suite.False(stage.IsActive())
	}
}

func (suite *OrderRepositoryTestSuite) TestGetNotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdatePersistsStageChanges() {
	ctx := context.Background()
	aggregate := suite.newOrder(2)
	worker := kernel.NewUUID()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.SetWork())
	suite.Require().NoError(aggregate.ActivateFirstStage())
	_, err := aggregate.ClaimStage(aggregate.ActiveStage().ID(), worker)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InWork, restored.Status())
	suite.Require().NotNil(restored.ActiveStage())
	suite.Equal(1, restored.ActiveStage().InOrder())
	suite.Require().NotNil(restored.ActiveStage().UserID())
	suite.True(restored.ActiveStage().UserID().IsEqual(worker))

	// Advancing must persist the deactivation of stage 1 too.
	_, _, err = aggregate.AdvanceStage(aggregate.ActiveStage().ID(), worker)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err = suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restored.ActiveStage())
	suite.Equal(2, restored.ActiveStage().InOrder())
	suite.False(restored.Stages()[0].IsActive())
}

func (suite *OrderRepositoryTestSuite) TestUpdateNotFound() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)

	err := suite.repo.Update(ctx, aggregate)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetByStageID() {
	ctx := context.Background()
	aggregate := suite.newOrder(2)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	restored, err := suite.repo.GetByStageID(ctx, aggregate.Stages()[1].ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(aggregate))

	_, err = suite.repo.GetByStageID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestHideAndRestoreRoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder(2)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.SetWork())
	suite.Require().NoError(aggregate.ActivateFirstStage())
	suite.Require().NoError(aggregate.Hide())
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Hidden, restored.Status())
	suite.Equal(order.InWork, restored.HiddenFrom())

	suite.Require().NoError(restored.Restore())
	suite.Require().NoError(suite.repo.Update(ctx, restored))

	restored, err = suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InWork, restored.Status())
	suite.Equal(order.Unknown, restored.HiddenFrom())
}

func (suite *OrderRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	aggregate := suite.newOrder(2)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	suite.Require().NoError(suite.repo.Delete(ctx, aggregate.ID()))

	_, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Cascade removed the stage rows with the order.
	var stageCount int64
	suite.Require().NoError(suite.db.Table("order_stages").
		Where("order_id = ?", aggregate.ID().Bytes()).
		Count(&stageCount).Error)
	suite.Equal(int64(0), stageCount)

	err = suite.repo.Delete(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestDeleteHiddenBefore() {
	ctx := context.Background()

	hiddenOld := suite.newOrder(1)
	suite.Require().NoError(hiddenOld.Hide())
	suite.Require().NoError(suite.repo.Add(ctx, hiddenOld))

	hiddenFresh := suite.newOrder(1)
	suite.Require().NoError(hiddenFresh.Hide())
	suite.Require().NoError(suite.repo.Add(ctx, hiddenFresh))

	visible := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(ctx, visible))

	// Age the first hidden order past the cutoff.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET updated_at = now() - interval '60 days' WHERE id = ?",
		hiddenOld.ID().Bytes(),
	).Error)

	removed, err := suite.repo.DeleteHiddenBefore(ctx, time.Now().Add(-30*24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.repo.Get(ctx, hiddenOld.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Cascade removed the stage rows with the order.
	var stageCount int64
	suite.Require().NoError(suite.db.Table("order_stages").
		Where("order_id = ?", hiddenOld.ID().Bytes()).
		Count(&stageCount).Error)
	suite.Equal(int64(0), stageCount)

	_, err = suite.repo.Get(ctx, hiddenFresh.ID())
	suite.Require().NoError(err)
	_, err = suite.repo.Get(ctx, visible.ID())
	suite.Require().NoError(err)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryTestSuite))
}
