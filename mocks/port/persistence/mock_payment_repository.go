package persistence

import (
	context "context"

	entity "github.com/announcement7/balance-system-backend/internal/domain/entity"
	persistence "github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
	mock "github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock implementation of the PaymentRepository port
type MockPaymentRepository struct {
	mock.Mock
}

type MockPaymentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentRepository) EXPECT() *MockPaymentRepository_Expecter {
	return &MockPaymentRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, attempt
func (_m *MockPaymentRepository) Create(ctx context.Context, attempt *entity.PaymentAttempt) error {
	ret := _m.Called(ctx, attempt)
	return ret.Error(0)
}

type MockPaymentRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockPaymentRepository_Expecter) Create(ctx interface{}, attempt interface{}) *MockPaymentRepository_Create_Call {
	return &MockPaymentRepository_Create_Call{Call: _e.mock.On("Create", ctx, attempt)}
}

func (_c *MockPaymentRepository_Create_Call) Run(run func(ctx context.Context, attempt *entity.PaymentAttempt)) *MockPaymentRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.PaymentAttempt))
	})
	return _c
}

func (_c *MockPaymentRepository_Create_Call) Return(err error) *MockPaymentRepository_Create_Call {
	_c.Call.Return(err)
	return _c
}

// GetByReference provides a mock function with given fields: ctx, reference
func (_m *MockPaymentRepository) GetByReference(ctx context.Context, reference string) (*entity.PaymentAttempt, error) {
	ret := _m.Called(ctx, reference)

	var r0 *entity.PaymentAttempt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.PaymentAttempt)
	}

	return r0, ret.Error(1)
}

type MockPaymentRepository_GetByReference_Call struct {
	*mock.Call
}

func (_e *MockPaymentRepository_Expecter) GetByReference(ctx interface{}, reference interface{}) *MockPaymentRepository_GetByReference_Call {
	return &MockPaymentRepository_GetByReference_Call{Call: _e.mock.On("GetByReference", ctx, reference)}
}

func (_c *MockPaymentRepository_GetByReference_Call) Return(attempt *entity.PaymentAttempt, err error) *MockPaymentRepository_GetByReference_Call {
	_c.Call.Return(attempt, err)
	return _c
}

// ApplyTerminal provides a mock function with given fields: ctx, reference, update
func (_m *MockPaymentRepository) ApplyTerminal(ctx context.Context, reference string, update persistence.TerminalUpdate) (bool, error) {
	ret := _m.Called(ctx, reference, update)
	return ret.Bool(0), ret.Error(1)
}

type MockPaymentRepository_ApplyTerminal_Call struct {
	*mock.Call
}

func (_e *MockPaymentRepository_Expecter) ApplyTerminal(ctx interface{}, reference interface{}, update interface{}) *MockPaymentRepository_ApplyTerminal_Call {
	return &MockPaymentRepository_ApplyTerminal_Call{Call: _e.mock.On("ApplyTerminal", ctx, reference, update)}
}

func (_c *MockPaymentRepository_ApplyTerminal_Call) Run(run func(ctx context.Context, reference string, update persistence.TerminalUpdate)) *MockPaymentRepository_ApplyTerminal_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(persistence.TerminalUpdate))
	})
	return _c
}

func (_c *MockPaymentRepository_ApplyTerminal_Call) Return(applied bool, err error) *MockPaymentRepository_ApplyTerminal_Call {
	_c.Call.Return(applied, err)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID, limit
func (_m *MockPaymentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.PaymentAttempt, error) {
	ret := _m.Called(ctx, userID, limit)

	var r0 []*entity.PaymentAttempt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.PaymentAttempt)
	}

	return r0, ret.Error(1)
}

type MockPaymentRepository_ListByUser_Call struct {
	*mock.Call
}

func (_e *MockPaymentRepository_Expecter) ListByUser(ctx interface{}, userID interface{}, limit interface{}) *MockPaymentRepository_ListByUser_Call {
	return &MockPaymentRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID, limit)}
}

func (_c *MockPaymentRepository_ListByUser_Call) Return(attempts []*entity.PaymentAttempt, err error) *MockPaymentRepository_ListByUser_Call {
	_c.Call.Return(attempts, err)
	return _c
}

// SumSuccessByUser provides a mock function with given fields: ctx
func (_m *MockPaymentRepository) SumSuccessByUser(ctx context.Context) (map[string]int64, error) {
	ret := _m.Called(ctx)

	var r0 map[string]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int64)
	}

	return r0, ret.Error(1)
}

type MockPaymentRepository_SumSuccessByUser_Call struct {
	*mock.Call
}

func (_e *MockPaymentRepository_Expecter) SumSuccessByUser(ctx interface{}) *MockPaymentRepository_SumSuccessByUser_Call {
	return &MockPaymentRepository_SumSuccessByUser_Call{Call: _e.mock.On("SumSuccessByUser", ctx)}
}

func (_c *MockPaymentRepository_SumSuccessByUser_Call) Return(totals map[string]int64, err error) *MockPaymentRepository_SumSuccessByUser_Call {
	_c.Call.Return(totals, err)
	return _c
}

// NewMockPaymentRepository creates a new instance of MockPaymentRepository
func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
