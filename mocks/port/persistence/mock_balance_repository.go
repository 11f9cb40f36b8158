package persistence

import (
	context "context"

	entity "github.com/announcement7/balance-system-backend/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockBalanceRepository is a mock implementation of the BalanceRepository port
type MockBalanceRepository struct {
	mock.Mock
}

type MockBalanceRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBalanceRepository) EXPECT() *MockBalanceRepository_Expecter {
	return &MockBalanceRepository_Expecter{mock: &_m.Mock}
}

// Credit provides a mock function with given fields: ctx, userID, amount, reference
func (_m *MockBalanceRepository) Credit(ctx context.Context, userID string, amount int64, reference string) (*entity.UserBalance, error) {
	ret := _m.Called(ctx, userID, amount, reference)

	var r0 *entity.UserBalance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.UserBalance)
	}

	return r0, ret.Error(1)
}

type MockBalanceRepository_Credit_Call struct {
	*mock.Call
}

func (_e *MockBalanceRepository_Expecter) Credit(ctx interface{}, userID interface{}, amount interface{}, reference interface{}) *MockBalanceRepository_Credit_Call {
	return &MockBalanceRepository_Credit_Call{Call: _e.mock.On("Credit", ctx, userID, amount, reference)}
}

func (_c *MockBalanceRepository_Credit_Call) Run(run func(ctx context.Context, userID string, amount int64, reference string)) *MockBalanceRepository_Credit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64), args[3].(string))
	})
	return _c
}

func (_c *MockBalanceRepository_Credit_Call) Return(balance *entity.UserBalance, err error) *MockBalanceRepository_Credit_Call {
	_c.Call.Return(balance, err)
	return _c
}

// GetByUserID provides a mock function with given fields: ctx, userID
func (_m *MockBalanceRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserBalance, error) {
	ret := _m.Called(ctx, userID)

	var r0 *entity.UserBalance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.UserBalance)
	}

	return r0, ret.Error(1)
}

type MockBalanceRepository_GetByUserID_Call struct {
	*mock.Call
}

func (_e *MockBalanceRepository_Expecter) GetByUserID(ctx interface{}, userID interface{}) *MockBalanceRepository_GetByUserID_Call {
	return &MockBalanceRepository_GetByUserID_Call{Call: _e.mock.On("GetByUserID", ctx, userID)}
}

func (_c *MockBalanceRepository_GetByUserID_Call) Return(balance *entity.UserBalance, err error) *MockBalanceRepository_GetByUserID_Call {
	_c.Call.Return(balance, err)
	return _c
}

// Repair provides a mock function with given fields: ctx, userID, balance
func (_m *MockBalanceRepository) Repair(ctx context.Context, userID string, balance int64) error {
	ret := _m.Called(ctx, userID, balance)
	return ret.Error(0)
}

type MockBalanceRepository_Repair_Call struct {
	*mock.Call
}

func (_e *MockBalanceRepository_Expecter) Repair(ctx interface{}, userID interface{}, balance interface{}) *MockBalanceRepository_Repair_Call {
	return &MockBalanceRepository_Repair_Call{Call: _e.mock.On("Repair", ctx, userID, balance)}
}

func (_c *MockBalanceRepository_Repair_Call) Return(err error) *MockBalanceRepository_Repair_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockBalanceRepository creates a new instance of MockBalanceRepository
func NewMockBalanceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBalanceRepository {
	m := &MockBalanceRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
