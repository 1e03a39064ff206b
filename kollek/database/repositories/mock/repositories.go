package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"

	repositories "github.com/kollekbot/kollek/kollek/database/repositories"
)

// MockWalletRepository is a mock of WalletRepository interface.
type MockWalletRepository struct {
	ctrl     *gomock.Controller
	recorder *MockWalletRepositoryMockRecorder
	isgomock struct{}
}

// MockWalletRepositoryMockRecorder is the mock recorder for MockWalletRepository.
type MockWalletRepositoryMockRecorder struct {
	mock *MockWalletRepository
}

// NewMockWalletRepository creates a new mock instance.
func NewMockWalletRepository(ctrl *gomock.Controller) *MockWalletRepository {
	mock := &MockWalletRepository{ctrl: ctrl}
	mock.recorder = &MockWalletRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWalletRepository) EXPECT() *MockWalletRepositoryMockRecorder {
	return m.recorder
}

// GetBalance mocks base method.
func (m *MockWalletRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockWalletRepositoryMockRecorder) GetBalance(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockWalletRepository)(nil).GetBalance), ctx, userID)
}

// MockCooldownRepository is a mock of CooldownRepository interface.
type MockCooldownRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCooldownRepositoryMockRecorder
	isgomock struct{}
}

// MockCooldownRepositoryMockRecorder is the mock recorder for MockCooldownRepository.
type MockCooldownRepositoryMockRecorder struct {
	mock *MockCooldownRepository
}

// NewMockCooldownRepository creates a new mock instance.
func NewMockCooldownRepository(ctrl *gomock.Controller) *MockCooldownRepository {
	mock := &MockCooldownRepository{ctrl: ctrl}
	mock.recorder = &MockCooldownRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCooldownRepository) EXPECT() *MockCooldownRepositoryMockRecorder {
	return m.recorder
}

// GetLastAction mocks base method.
func (m *MockCooldownRepository) GetLastAction(ctx context.Context, userID, action string) (time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLastAction", ctx, userID, action)
	ret0, _ := ret[0].(time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLastAction indicates an expected call of GetLastAction.
func (mr *MockCooldownRepositoryMockRecorder) GetLastAction(ctx, userID, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLastAction", reflect.TypeOf((*MockCooldownRepository)(nil).GetLastAction), ctx, userID, action)
}

// MockCollectionRepository is a mock of CollectionRepository interface.
type MockCollectionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCollectionRepositoryMockRecorder
	isgomock struct{}
}

// MockCollectionRepositoryMockRecorder is the mock recorder for MockCollectionRepository.
type MockCollectionRepositoryMockRecorder struct {
	mock *MockCollectionRepository
}

// NewMockCollectionRepository creates a new mock instance.
func NewMockCollectionRepository(ctrl *gomock.Controller) *MockCollectionRepository {
	mock := &MockCollectionRepository{ctrl: ctrl}
	mock.recorder = &MockCollectionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCollectionRepository) EXPECT() *MockCollectionRepositoryMockRecorder {
	return m.recorder
}

// CountCopies mocks base method.
func (m *MockCollectionRepository) CountCopies(ctx context.Context, userID string, cardID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCopies", ctx, userID, cardID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCopies indicates an expected call of CountCopies.
func (mr *MockCollectionRepositoryMockRecorder) CountCopies(ctx, userID, cardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCopies", reflect.TypeOf((*MockCollectionRepository)(nil).CountCopies), ctx, userID, cardID)
}

// ListOwned mocks base method.
func (m *MockCollectionRepository) ListOwned(ctx context.Context, userID string) ([]repositories.OwnedCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOwned", ctx, userID)
	ret0, _ := ret[0].([]repositories.OwnedCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOwned indicates an expected call of ListOwned.
func (mr *MockCollectionRepositoryMockRecorder) ListOwned(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOwned", reflect.TypeOf((*MockCollectionRepository)(nil).ListOwned), ctx, userID)
}
