package warehouserepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/warehouserepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type WarehouseRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *warehouserepo.GormWarehouseRepository
	tracker    *MockAggregateTracker
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&warehouserepo.WarehouseDTO{}))
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE warehouses").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = warehouserepo.NewGormWarehouseRepository(suite.db, suite.tracker)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestAdd_TracksWarehouse() {
	w := suite.add("Bole Hub", "8.9806,38.7578", "Addis Ababa", warehouse.Active)

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", w.ID(), w)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestGetAllActive_ReturnsActiveOrderedByName() {
	suite.add("Piassa Hub", "9.0350,38.7520", "Addis Ababa", warehouse.Active)
	suite.add("Adama Depot", "8.5400,39.2700", "Adama", warehouse.Active)
	suite.add("Closed Depot", "9.0000,38.7000", "Addis Ababa", warehouse.Inactive)
	suite.add("Bahir Dar Yard", "11.5936,37.3908", "Bahir Dar", warehouse.Maintenance)

	active, err := suite.repository.GetAllActive(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(active, 2)
	suite.Equal("Adama Depot", active[0].Name())
	suite.Equal("Piassa Hub", active[1].Name())
	suite.Equal("Adama", active[0].City())
	suite.Equal(warehouse.Active, active[1].Status())
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestGetAllActive_KeepsUnusableCoordinates() {
	suite.add("No Coordinates", "0,0", "Addis Ababa", warehouse.Active)
	suite.add("Broken", "not a location", "Addis Ababa", warehouse.Active)

	active, err := suite.repository.GetAllActive(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(active, 2)
	for _, w := range active {
		suite.False(w.IsEligible())
	}
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestGetAllActive_Empty() {
	active, err := suite.repository.GetAllActive(context.Background())

	suite.Require().NoError(err)
	suite.Empty(active)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) add(name, mapLocation, city string, status warehouse.Status) *warehouse.Warehouse {
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), name, mapLocation, city, status)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), w))
	return w
}

func TestWarehouseRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseRepositoryIntegrationTestSuite))
}
