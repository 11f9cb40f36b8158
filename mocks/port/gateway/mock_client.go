package gateway

import (
	context "context"

	gateway "github.com/announcement7/balance-system-backend/internal/domain/port/gateway"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of the gateway Client port
type MockClient struct {
	mock.Mock
}

type MockClient_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClient) EXPECT() *MockClient_Expecter {
	return &MockClient_Expecter{mock: &_m.Mock}
}

// InitiatePush provides a mock function with given fields: ctx, req
func (_m *MockClient) InitiatePush(ctx context.Context, req gateway.PushRequest) (*gateway.PushResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *gateway.PushResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*gateway.PushResponse)
	}

	return r0, ret.Error(1)
}

type MockClient_InitiatePush_Call struct {
	*mock.Call
}

func (_e *MockClient_Expecter) InitiatePush(ctx interface{}, req interface{}) *MockClient_InitiatePush_Call {
	return &MockClient_InitiatePush_Call{Call: _e.mock.On("InitiatePush", ctx, req)}
}

func (_c *MockClient_InitiatePush_Call) Run(run func(ctx context.Context, req gateway.PushRequest)) *MockClient_InitiatePush_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(gateway.PushRequest))
	})
	return _c
}

func (_c *MockClient_InitiatePush_Call) Return(resp *gateway.PushResponse, err error) *MockClient_InitiatePush_Call {
	_c.Call.Return(resp, err)
	return _c
}

// NewMockClient creates a new instance of MockClient
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
