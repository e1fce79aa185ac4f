package web

import (
	"context"
	"sync"
	"time"

	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"

	"github.com/stretchr/testify/mock"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Handle(ctx context.Context, query queries.AuthenticateQuery) (*identity.Account, error) {
	args := m.Called(ctx, query)
	account, _ := args.Get(0).(*identity.Account)
	return account, args.Error(1)
}

type MockSignUp struct {
	mock.Mock
}

func (m *MockSignUp) Handle(ctx context.Context, cmd commands.SignUpCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSeed struct {
	mock.Mock
}

func (m *MockSeed) Handle(ctx context.Context, cmd commands.SeedRecordsCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAdminDashboard struct {
	mock.Mock
}

func (m *MockAdminDashboard) Handle(ctx context.Context, query queries.GetAdminDashboardQuery) (queries.AdminDashboard, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.AdminDashboard), args.Error(1)
}

type MockPharmacyDetail struct {
	mock.Mock
}

func (m *MockPharmacyDetail) Handle(ctx context.Context, query queries.GetPharmacyDetailQuery) (queries.PharmacyDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PharmacyDetail), args.Error(1)
}

type MockOrderStatusChanger struct {
	mock.Mock
}

func (m *MockOrderStatusChanger) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (commands.ChangeOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ChangeOrderStatusResult), args.Error(1)
}

type MockApplicationReviewer struct {
	mock.Mock
}

func (m *MockApplicationReviewer) Handle(ctx context.Context, cmd commands.ReviewApplicationCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockApplicationSubmitter struct {
	mock.Mock
}

func (m *MockApplicationSubmitter) Handle(ctx context.Context, cmd commands.SubmitApplicationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderCreator struct {
	mock.Mock
}

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateCustomerOrderCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockTaskStatusChanger struct {
	mock.Mock
}

func (m *MockTaskStatusChanger) Handle(
	ctx context.Context,
	cmd commands.ChangeDeliveryTaskStatusCommand,
) (commands.ChangeDeliveryTaskStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ChangeDeliveryTaskStatusResult), args.Error(1)
}

type MockStatusEntryUpdater struct {
	mock.Mock
}

func (m *MockStatusEntryUpdater) Handle(ctx context.Context, cmd commands.UpdateStatusEntryCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockRecordFinder struct {
	mock.Mock
}

func (m *MockRecordFinder) Handle(ctx context.Context, query queries.FindRecordQuery) error {
	return m.Called(ctx, query).Error(0)
}

// existingRecords finds every record.
type existingRecords struct{}

func (existingRecords) Handle(context.Context, queries.FindRecordQuery) error {
	return nil
}

// memoryStore keeps sessions in a map.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]string{}}
}

func (s *memoryStore) Save(_ context.Context, sessionID, accountID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = accountID
	return nil
}

func (s *memoryStore) Active(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID]
	return ok, nil
}

func (s *memoryStore) Revoke(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
