package persistence

import (
	context "context"

	persistence "github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
	mock "github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

// Begin provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	ret := _m.Called(ctx)

	var r0 context.Context
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	return r0, ret.Error(1)
}

type MockUnitOfWork_Begin_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) Begin(ctx interface{}) *MockUnitOfWork_Begin_Call {
	return &MockUnitOfWork_Begin_Call{Call: _e.mock.On("Begin", ctx)}
}

func (_c *MockUnitOfWork_Begin_Call) Return(txCtx context.Context, err error) *MockUnitOfWork_Begin_Call {
	_c.Call.Return(txCtx, err)
	return _c
}

// Commit provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Commit(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

type MockUnitOfWork_Commit_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) Commit(ctx interface{}) *MockUnitOfWork_Commit_Call {
	return &MockUnitOfWork_Commit_Call{Call: _e.mock.On("Commit", ctx)}
}

func (_c *MockUnitOfWork_Commit_Call) Return(err error) *MockUnitOfWork_Commit_Call {
	_c.Call.Return(err)
	return _c
}

// Rollback provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Rollback(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

type MockUnitOfWork_Rollback_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) Rollback(ctx interface{}) *MockUnitOfWork_Rollback_Call {
	return &MockUnitOfWork_Rollback_Call{Call: _e.mock.On("Rollback", ctx)}
}

func (_c *MockUnitOfWork_Rollback_Call) Return(err error) *MockUnitOfWork_Rollback_Call {
	_c.Call.Return(err)
	return _c
}

// GetPaymentRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetPaymentRepository(ctx context.Context) persistence.PaymentRepository {
	ret := _m.Called(ctx)

	var r0 persistence.PaymentRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.PaymentRepository)
	}

	return r0
}

type MockUnitOfWork_GetPaymentRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) GetPaymentRepository(ctx interface{}) *MockUnitOfWork_GetPaymentRepository_Call {
	return &MockUnitOfWork_GetPaymentRepository_Call{Call: _e.mock.On("GetPaymentRepository", ctx)}
}

func (_c *MockUnitOfWork_GetPaymentRepository_Call) Return(repo persistence.PaymentRepository) *MockUnitOfWork_GetPaymentRepository_Call {
	_c.Call.Return(repo)
	return _c
}

// GetBalanceRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetBalanceRepository(ctx context.Context) persistence.BalanceRepository {
	ret := _m.Called(ctx)

	var r0 persistence.BalanceRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.BalanceRepository)
	}

	return r0
}

type MockUnitOfWork_GetBalanceRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) GetBalanceRepository(ctx interface{}) *MockUnitOfWork_GetBalanceRepository_Call {
	return &MockUnitOfWork_GetBalanceRepository_Call{Call: _e.mock.On("GetBalanceRepository", ctx)}
}

func (_c *MockUnitOfWork_GetBalanceRepository_Call) Return(repo persistence.BalanceRepository) *MockUnitOfWork_GetBalanceRepository_Call {
	_c.Call.Return(repo)
	return _c
}

// GetReceiptRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetReceiptRepository(ctx context.Context) persistence.ReceiptRepository {
	ret := _m.Called(ctx)

	var r0 persistence.ReceiptRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.ReceiptRepository)
	}

	return r0
}

type MockUnitOfWork_GetReceiptRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) GetReceiptRepository(ctx interface{}) *MockUnitOfWork_GetReceiptRepository_Call {
	return &MockUnitOfWork_GetReceiptRepository_Call{Call: _e.mock.On("GetReceiptRepository", ctx)}
}

func (_c *MockUnitOfWork_GetReceiptRepository_Call) Return(repo persistence.ReceiptRepository) *MockUnitOfWork_GetReceiptRepository_Call {
	_c.Call.Return(repo)
	return _c
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
