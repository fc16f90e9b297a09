package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pizzahouse/config"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/infra/clock"
	mockRepo "pizzahouse/internal/mocks/repository"
	mockSvc "pizzahouse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var pkt = time.FixedZone("PKT", 5*60*60)

// mondayAt returns a Monday in local restaurant time.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2024, time.March, 4, hour, minute, 0, 0, pkt)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// inlineRunner runs tasks synchronously and records their names.
type inlineRunner struct {
	mu     sync.Mutex
	reject bool
	names  []string
	errs   []error
}

func (r *inlineRunner) Submit(name string, task service.Task) bool {
	if r.reject {
		return false
	}

	err := task(context.Background())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	r.errs = append(r.errs, err)

	return true
}

func (r *inlineRunner) tasks() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.names...)
}

type orderFixture struct {
	clock       *clock.MockClock
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	zoneRepo    *mockRepo.MockZoneRepository
	txOrderRepo *mockRepo.MockOrderRepository
	txZoneRepo  *mockRepo.MockZoneRepository
	printer     *mockSvc.MockPrinter
	broadcaster *mockSvc.MockBroadcaster
	runner      *inlineRunner
	cfg         *config.Config
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	return &orderFixture{
		clock:       clock.NewMockClock(mondayAt(12, 0)),
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		zoneRepo:    mockRepo.NewMockZoneRepository(t),
		txOrderRepo: mockRepo.NewMockOrderRepository(t),
		txZoneRepo:  mockRepo.NewMockZoneRepository(t),
		printer:     mockSvc.NewMockPrinter(t),
		broadcaster: mockSvc.NewMockBroadcaster(t),
		runner:      &inlineRunner{},
		cfg:         testConfig(),
	}
}

func (f *orderFixture) service() *orderService {
	return NewOrderService(OrderServiceParams{
		TxManager:   f.txManager,
		OrderRepo:   f.orderRepo,
		ZoneRepo:    f.zoneRepo,
		Clock:       f.clock,
		TaskRunner:  f.runner,
		Printer:     f.printer,
		Broadcaster: f.broadcaster,
		Config:      f.cfg,
		Logger:      discardLogger(),
	}).(*orderService)
}

// expectTransaction runs the transaction body against the fixture's tx repositories.
func (f *orderFixture) expectTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}

func (f *orderFixture) expectPrints(kinds ...service.DocumentKind) {
	for _, kind := range kinds {
		f.printer.EXPECT().
			PrintOrder(mock.Anything, mock.AnythingOfType("*entity.Order"), kind).
			Return(nil).
			Once()
	}
}

func zoneA() *entity.Zone {
	return &entity.Zone{
		ID:                 uuid.New(),
		Name:               "Zone A",
		Center:             geo.NewCoordinate(24.7337, 69.7967),
		RadiusKm:           1.5,
		BaseFee:            decimal.NewFromInt(30),
		PerKmSurcharge:     decimal.Zero,
		MinimumOrderAmount: decimal.NewFromInt(300),
		MaxDeliveryMinutes: 20,
		Priority:           1,
		OperatingHours:     entity.UniformOperatingHours(entity.NewClockTime(11, 0), entity.NewClockTime(23, 0)),
		IsActive:           true,
	}
}

func pizza(price string, quantity int) entity.OrderItem {
	return entity.OrderItem{
		ProductID: uuid.New(),
		Name:      "Margherita",
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(price),
		Customization: entity.Customization{
			Size: entity.ItemSizeLarge,
		},
	}
}

func address(point geo.Coordinate) *entity.DeliveryAddress {
	return &entity.DeliveryAddress{
		Street:      "12 Station Road",
		City:        "Mithi",
		PostalCode:  "69230",
		Coordinates: point,
	}
}

func pendingOrder(userID uuid.UUID) *entity.Order {
	now := mondayAt(11, 30)

	return &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Items:         []entity.OrderItem{pizza("25", 1)},
		Type:          entity.OrderTypePickup,
		PaymentMethod: entity.PaymentMethodCash,
		PaymentStatus: entity.PaymentStatusPending,
		Status:        entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
