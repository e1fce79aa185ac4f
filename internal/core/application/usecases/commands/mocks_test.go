package commands_test

import (
	"context"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/inventory"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/notification"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/outbox"
	"pharmacygo/internal/core/domain/model/payment"
	"pharmacygo/internal/core/domain/model/pharmacy"
	"pharmacygo/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Lock(ctx context.Context, key int64) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	return m.Called().Get(0).(ports.AccountRepository)
}
func (m *MockUoW) PharmacyRepository() ports.PharmacyRepository {
	return m.Called().Get(0).(ports.PharmacyRepository)
}
func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	return m.Called().Get(0).(ports.ApplicationRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) TaskRepository() ports.TaskRepository {
	return m.Called().Get(0).(ports.TaskRepository)
}
func (m *MockUoW) TimelineRepository() ports.TimelineRepository {
	return m.Called().Get(0).(ports.TimelineRepository)
}
func (m *MockUoW) StatusBoardRepository() ports.StatusBoardRepository {
	return m.Called().Get(0).(ports.StatusBoardRepository)
}
func (m *MockUoW) StockRepository() ports.StockRepository {
	return m.Called().Get(0).(ports.StockRepository)
}
func (m *MockUoW) ProviderRepository() ports.ProviderRepository {
	return m.Called().Get(0).(ports.ProviderRepository)
}
func (m *MockUoW) CardRepository() ports.CardRepository {
	return m.Called().Get(0).(ports.CardRepository)
}
func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}
func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

// MockFactory returns the same unit of work on every Create.
type MockFactory[T any] struct {
	mock.Mock
	uow T
}

func newFactory[T any](uow T) *MockFactory[T] {
	f := &MockFactory[T]{uow: uow}
	f.On("Create").Return()
	return f
}

func (f *MockFactory[T]) Create() T {
	f.Called()
	return f.uow
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *identity.Account) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*identity.Account)
	return a, args.Error(1)
}
func (m *MockAccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepository) FindLoginCandidates(ctx context.Context, identifier string) ([]*identity.Account, error) {
	args := m.Called(ctx, identifier)
	a, _ := args.Get(0).([]*identity.Account)
	return a, args.Error(1)
}

type MockPharmacyRepository struct{ mock.Mock }

func (m *MockPharmacyRepository) Add(ctx context.Context, p *pharmacy.Pharmacy) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPharmacyRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*pharmacy.Pharmacy)
	return p, args.Error(1)
}
func (m *MockPharmacyRepository) GetByName(ctx context.Context, name string) (*pharmacy.Pharmacy, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(*pharmacy.Pharmacy)
	return p, args.Error(1)
}
func (m *MockPharmacyRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Add(ctx context.Context, a *pharmacy.Application) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockApplicationRepository) Update(ctx context.Context, a *pharmacy.Application) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Application, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*pharmacy.Application)
	return a, args.Error(1)
}
func (m *MockApplicationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *delivery.Task) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockTaskRepository) Update(ctx context.Context, t *delivery.Task) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Task, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*delivery.Task)
	return t, args.Error(1)
}
func (m *MockTaskRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTimelineRepository struct{ mock.Mock }

func (m *MockTimelineRepository) Add(ctx context.Context, e *delivery.TimelineEvent) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockTimelineRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatusBoardRepository struct{ mock.Mock }

func (m *MockStatusBoardRepository) Add(ctx context.Context, e *delivery.StatusEntry) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockStatusBoardRepository) Update(ctx context.Context, e *delivery.StatusEntry) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockStatusBoardRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.StatusEntry, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*delivery.StatusEntry)
	return e, args.Error(1)
}
func (m *MockStatusBoardRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, s *inventory.StockItem) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockStockRepository) Update(ctx context.Context, s *inventory.StockItem) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockStockRepository) GetAll(ctx context.Context) ([]*inventory.StockItem, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*inventory.StockItem)
	return s, args.Error(1)
}
func (m *MockStockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockProviderRepository struct{ mock.Mock }

func (m *MockProviderRepository) Add(ctx context.Context, p *payment.Provider) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProviderRepository) GetByName(ctx context.Context, name string) (*payment.Provider, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(*payment.Provider)
	return p, args.Error(1)
}
func (m *MockProviderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCardRepository struct{ mock.Mock }

func (m *MockCardRepository) Add(ctx context.Context, c *payment.Card) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCardRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...*outbox.Message) error {
	return m.Called(ctx, messages).Error(0)
}
func (m *MockOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]*outbox.Message)
	return msgs, args.Error(1)
}
func (m *MockOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	return m.Called(ctx, message).Error(0)
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockHasher) Matches(hash, password string) bool {
	return m.Called(hash, password).Bool(0)
}

type MockBus struct{ mock.Mock }

func (m *MockBus) Publish(ctx context.Context, message *outbox.Message) error {
	return m.Called(ctx, message).Error(0)
}
