package persistence

import (
	context "context"

	entity "github.com/announcement7/balance-system-backend/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockReceiptRepository is a mock implementation of the ReceiptRepository port
type MockReceiptRepository struct {
	mock.Mock
}

type MockReceiptRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReceiptRepository) EXPECT() *MockReceiptRepository_Expecter {
	return &MockReceiptRepository_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: ctx, receipt
func (_m *MockReceiptRepository) Append(ctx context.Context, receipt *entity.ReceiptEntry) error {
	ret := _m.Called(ctx, receipt)
	return ret.Error(0)
}

type MockReceiptRepository_Append_Call struct {
	*mock.Call
}

func (_e *MockReceiptRepository_Expecter) Append(ctx interface{}, receipt interface{}) *MockReceiptRepository_Append_Call {
	return &MockReceiptRepository_Append_Call{Call: _e.mock.On("Append", ctx, receipt)}
}

func (_c *MockReceiptRepository_Append_Call) Run(run func(ctx context.Context, receipt *entity.ReceiptEntry)) *MockReceiptRepository_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.ReceiptEntry))
	})
	return _c
}

func (_c *MockReceiptRepository_Append_Call) Return(err error) *MockReceiptRepository_Append_Call {
	_c.Call.Return(err)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID, limit
func (_m *MockReceiptRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ReceiptEntry, error) {
	ret := _m.Called(ctx, userID, limit)

	var r0 []*entity.ReceiptEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.ReceiptEntry)
	}

	return r0, ret.Error(1)
}

type MockReceiptRepository_ListByUser_Call struct {
	*mock.Call
}

func (_e *MockReceiptRepository_Expecter) ListByUser(ctx interface{}, userID interface{}, limit interface{}) *MockReceiptRepository_ListByUser_Call {
	return &MockReceiptRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID, limit)}
}

func (_c *MockReceiptRepository_ListByUser_Call) Return(receipts []*entity.ReceiptEntry, err error) *MockReceiptRepository_ListByUser_Call {
	_c.Call.Return(receipts, err)
	return _c
}

// GetByReference provides a mock function with given fields: ctx, reference
func (_m *MockReceiptRepository) GetByReference(ctx context.Context, reference string) ([]*entity.ReceiptEntry, error) {
	ret := _m.Called(ctx, reference)

	var r0 []*entity.ReceiptEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.ReceiptEntry)
	}

	return r0, ret.Error(1)
}

type MockReceiptRepository_GetByReference_Call struct {
	*mock.Call
}

func (_e *MockReceiptRepository_Expecter) GetByReference(ctx interface{}, reference interface{}) *MockReceiptRepository_GetByReference_Call {
	return &MockReceiptRepository_GetByReference_Call{Call: _e.mock.On("GetByReference", ctx, reference)}
}

func (_c *MockReceiptRepository_GetByReference_Call) Return(receipts []*entity.ReceiptEntry, err error) *MockReceiptRepository_GetByReference_Call {
	_c.Call.Return(receipts, err)
	return _c
}

// NewMockReceiptRepository creates a new instance of MockReceiptRepository
func NewMockReceiptRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReceiptRepository {
	m := &MockReceiptRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
