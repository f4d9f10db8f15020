package ndrrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/ndrrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/pkg/errs"

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

// NDRRepositoryIntegrationTestSuite provides integration tests for NDRRepository
// using PostgreSQL containers, including the partial unique index that keeps a
// shipment down to one unresolved report.
type NDRRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ndrrepo.GormNDRRepository
	tracker    *MockAggregateTracker
}

func (suite *NDRRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&ndrrepo.NDRReportDTO{}, &ndrrepo.NDRCallLogDTO{}))
}

func (suite *NDRRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ndr_reports, ndr_call_logs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = ndrrepo.NewGormNDRRepository(suite.db, suite.tracker)
}

func (suite *NDRRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NDRRepositoryIntegrationTestSuite) TestAdd_ValidReport_Success() {
	ctx := context.Background()

	report := suite.createTestReport(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", report.ID(), report).Once()

	err := suite.repository.Add(ctx, report)
	suite.Require().NoError(err)

	suite.assertReportCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestAdd_SecondOpenReportForShipment_RejectedByIndex() {
	ctx := context.Background()

	shipmentID := kernel.NewUUID()
	first := suite.createTestReport(shipmentID, time.Now().UTC())
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestReport(shipmentID, time.Now().UTC())
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertReportCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestAdd_NewReportAfterResolution_Allowed() {
	ctx := context.Background()

	shipmentID := kernel.NewUUID()
	first := suite.createTestReport(shipmentID, time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	suite.Require().NoError(first.Resolve(ndr.ResolutionDelivered, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	second := suite.createTestReport(shipmentID, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.assertReportCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestGet_ExistingReport_RoundTrips() {
	ctx := context.Background()

	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	report := suite.createTestReport(kernel.NewUUID(), createdAt)
	suite.tracker.On("TrackAggregate", report.ID(), report).Once()
	suite.Require().NoError(suite.repository.Add(ctx, report))

	retrieved, err := suite.repository.Get(ctx, report.ID())
	suite.Require().NoError(err)

	suite.Equal(report.ID(), retrieved.ID())
	suite.Equal(report.ShipmentID(), retrieved.ShipmentID())
	suite.Equal(ndr.StatusOpen, retrieved.Status())
	suite.Equal("CUSTOMER_NOT_AVAILABLE", retrieved.ReasonCode())
	suite.False(retrieved.CustomerContacted())
	suite.False(retrieved.IsResolved())
	suite.Equal(1, retrieved.Version())
	suite.True(createdAt.Equal(retrieved.CreatedAt()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestGet_NonExistentReport_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *NDRRepositoryIntegrationTestSuite) TestUpdate_PersistsContactAndReattempt() {
	ctx := context.Background()

	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	report := suite.createTestReport(kernel.NewUUID(), createdAt)
	suite.tracker.On("TrackAggregate", report.ID(), report).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, report))

	respondedAt := createdAt.Add(time.Hour)
	newAddress := "42 Hill Road, Bandra West"
	pin, err := kernel.NewPincode("400050")
	suite.Require().NoError(err)
	suite.Require().NoError(report.RegisterContact(ndr.CallConnected, respondedAt, &newAddress, &pin, nil))
	suite.Require().NoError(report.ScheduleReattempt(createdAt.Add(24*time.Hour), "10:00-13:00"))
	suite.Require().NoError(suite.repository.Update(ctx, report))

	retrieved, err := suite.repository.Get(ctx, report.ID())
	suite.Require().NoError(err)
	suite.Equal(ndr.StatusReattemptScheduled, retrieved.Status())
	suite.True(retrieved.CustomerContacted())
	suite.Require().NotNil(retrieved.CorrectedAddress())
	suite.Equal(newAddress, *retrieved.CorrectedAddress())
	suite.Require().NotNil(retrieved.CorrectedPincode())
	suite.True(retrieved.CorrectedPincode().IsEqual(pin))
	suite.Require().NotNil(retrieved.PreferredTimeSlot())
	suite.Equal("10:00-13:00", *retrieved.PreferredTimeSlot())
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()

	report := suite.createTestReport(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", report.ID(), report).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, report))

	suite.Require().NoError(report.InitiateRTO())
	suite.Require().NoError(suite.repository.Update(ctx, report))

	// A second writer still holding version 1 loses the race.
	err := suite.repository.Update(ctx, report)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestGetOpenByShipment_FindsUnresolvedReport() {
	ctx := context.Background()

	shipmentID := kernel.NewUUID()
	report := suite.createTestReport(shipmentID, time.Now().UTC())
	suite.tracker.On("TrackAggregate", report.ID(), report).Once()
	suite.Require().NoError(suite.repository.Add(ctx, report))

	retrieved, err := suite.repository.GetOpenByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Equal(report.ID(), retrieved.ID())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestGetOpenByShipment_IgnoresClosedReports() {
	ctx := context.Background()

	shipmentID := kernel.NewUUID()
	report := suite.createTestReport(shipmentID, time.Now().UTC())
	suite.tracker.On("TrackAggregate", report.ID(), report).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, report))

	suite.Require().NoError(report.Resolve(ndr.ResolutionDelivered, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, report))

	retrieved, err := suite.repository.GetOpenByShipment(ctx, shipmentID)
	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *NDRRepositoryIntegrationTestSuite) TestGetOverdueOpen_ReturnsOldestFirst() {
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	older := suite.createTestReport(kernel.NewUUID(), now.Add(-72*time.Hour))
	newer := suite.createTestReport(kernel.NewUUID(), now.Add(-50*time.Hour))
	fresh := suite.createTestReport(kernel.NewUUID(), now.Add(-time.Hour))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	overdue, err := suite.repository.GetOverdueOpen(ctx, now.Add(-48*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 2)
	suite.Equal(older.ID(), overdue[0].ID())
	suite.Equal(newer.ID(), overdue[1].ID())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestCallLogs_AppendAndListInOrder() {
	ctx := context.Background()

	reportID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	second := suite.createTestCallLog(reportID, ndr.CallConnected, ndr.OutcomeRescheduleRequested, base.Add(time.Minute))
	first := suite.createTestCallLog(reportID, ndr.CallNoAnswer, ndr.CallOutcomeUnknown, base)

	suite.Require().NoError(suite.repository.AppendCallLog(ctx, second))
	suite.Require().NoError(suite.repository.AppendCallLog(ctx, first))

	logs, err := suite.repository.ListCallLogs(ctx, reportID)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)

	suite.Equal(first.ID(), logs[0].ID())
	suite.Equal(second.ID(), logs[1].ID())
	suite.Equal(ndr.CallNoAnswer, logs[0].CallStatus())
	suite.Equal(ndr.OutcomeRescheduleRequested, logs[1].CallOutcome())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestCallLogs_UnknownReport_ReturnsEmptySlice() {
	ctx := context.Background()

	logs, err := suite.repository.ListCallLogs(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(logs)
}

// createTestReport creates an open report for the given shipment.
func (suite *NDRRepositoryIntegrationTestSuite) createTestReport(
	shipmentID kernel.UUID, createdAt time.Time,
) *ndr.Report {
	report, err := ndr.NewReport(kernel.NewUUID(), shipmentID, "CUSTOMER_NOT_AVAILABLE", createdAt)
	suite.Require().NoError(err)
	return report
}

// createTestCallLog creates a contact attempt entry for the given report.
func (suite *NDRRepositoryIntegrationTestSuite) createTestCallLog(
	reportID kernel.UUID, status ndr.CallStatus, outcome ndr.CallOutcome, createdAt time.Time,
) *ndr.CallLog {
	log, err := ndr.NewCallLog(
		kernel.NewUUID(), reportID, status, outcome,
		nil, nil, nil, nil, nil, nil, createdAt,
	)
	suite.Require().NoError(err)
	return log
}

// assertReportCount verifies the number of reports in the database.
func (suite *NDRRepositoryIntegrationTestSuite) assertReportCount(expected int) {
	var count int64
	err := suite.db.Model(&ndrrepo.NDRReportDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestNDRRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NDRRepositoryIntegrationTestSuite))
}
