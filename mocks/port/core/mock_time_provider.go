package core

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock implementation of the TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

type MockTimeProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTimeProvider) EXPECT() *MockTimeProvider_Expecter {
	return &MockTimeProvider_Expecter{mock: &_m.Mock}
}

// Now provides a mock function with no fields
func (_m *MockTimeProvider) Now() time.Time {
	ret := _m.Called()
	return ret.Get(0).(time.Time)
}

type MockTimeProvider_Now_Call struct {
	*mock.Call
}

func (_e *MockTimeProvider_Expecter) Now() *MockTimeProvider_Now_Call {
	return &MockTimeProvider_Now_Call{Call: _e.mock.On("Now")}
}

func (_c *MockTimeProvider_Now_Call) Return(t time.Time) *MockTimeProvider_Now_Call {
	_c.Call.Return(t)
	return _c
}

// Since provides a mock function with given fields: t
func (_m *MockTimeProvider) Since(t time.Time) time.Duration {
	ret := _m.Called(t)
	return ret.Get(0).(time.Duration)
}

type MockTimeProvider_Since_Call struct {
	*mock.Call
}

func (_e *MockTimeProvider_Expecter) Since(t interface{}) *MockTimeProvider_Since_Call {
	return &MockTimeProvider_Since_Call{Call: _e.mock.On("Since", t)}
}

func (_c *MockTimeProvider_Since_Call) Return(d time.Duration) *MockTimeProvider_Since_Call {
	_c.Call.Return(d)
	return _c
}

// Sleep provides a mock function with given fields: d
func (_m *MockTimeProvider) Sleep(d time.Duration) {
	_m.Called(d)
}

type MockTimeProvider_Sleep_Call struct {
	*mock.Call
}

func (_e *MockTimeProvider_Expecter) Sleep(d interface{}) *MockTimeProvider_Sleep_Call {
	return &MockTimeProvider_Sleep_Call{Call: _e.mock.On("Sleep", d)}
}

func (_c *MockTimeProvider_Sleep_Call) Run(run func(d time.Duration)) *MockTimeProvider_Sleep_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(time.Duration))
	})
	return _c
}

func (_c *MockTimeProvider_Sleep_Call) Return() *MockTimeProvider_Sleep_Call {
	_c.Call.Return()
	return _c
}

// WithTimeout provides a mock function with given fields: ctx, timeout
func (_m *MockTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ret := _m.Called(ctx, timeout)

	var r0 context.Context
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	var r1 context.CancelFunc
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(context.CancelFunc)
	}

	return r0, r1
}

type MockTimeProvider_WithTimeout_Call struct {
	*mock.Call
}

func (_e *MockTimeProvider_Expecter) WithTimeout(ctx interface{}, timeout interface{}) *MockTimeProvider_WithTimeout_Call {
	return &MockTimeProvider_WithTimeout_Call{Call: _e.mock.On("WithTimeout", ctx, timeout)}
}

func (_c *MockTimeProvider_WithTimeout_Call) Return(rctx context.Context, cancel context.CancelFunc) *MockTimeProvider_WithTimeout_Call {
	_c.Call.Return(rctx, cancel)
	return _c
}

// NewMockTimeProvider creates a new instance of MockTimeProvider
func NewMockTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
