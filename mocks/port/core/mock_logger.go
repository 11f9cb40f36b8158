package core

import mock "github.com/stretchr/testify/mock"

// MockLogger is a mock implementation of the Logger port
type MockLogger struct {
	mock.Mock
}

type MockLogger_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLogger) EXPECT() *MockLogger_Expecter {
	return &MockLogger_Expecter{mock: &_m.Mock}
}

// Debug provides a mock function with given fields: message, fields
func (_m *MockLogger) Debug(message string, fields map[string]any) {
	_m.Called(message, fields)
}

type MockLogger_Debug_Call struct {
	*mock.Call
}

func (_e *MockLogger_Expecter) Debug(message interface{}, fields interface{}) *MockLogger_Debug_Call {
	return &MockLogger_Debug_Call{Call: _e.mock.On("Debug", message, fields)}
}

func (_c *MockLogger_Debug_Call) Run(run func(message string, fields map[string]any)) *MockLogger_Debug_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(map[string]any))
	})
	return _c
}

func (_c *MockLogger_Debug_Call) Return() *MockLogger_Debug_Call {
	_c.Call.Return()
	return _c
}

// Info provides a mock function with given fields: message, fields
func (_m *MockLogger) Info(message string, fields map[string]any) {
	_m.Called(message, fields)
}

type MockLogger_Info_Call struct {
	*mock.Call
}

func (_e *MockLogger_Expecter) Info(message interface{}, fields interface{}) *MockLogger_Info_Call {
	return &MockLogger_Info_Call{Call: _e.mock.On("Info", message, fields)}
}

func (_c *MockLogger_Info_Call) Run(run func(message string, fields map[string]any)) *MockLogger_Info_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(map[string]any))
	})
	return _c
}

func (_c *MockLogger_Info_Call) Return() *MockLogger_Info_Call {
	_c.Call.Return()
	return _c
}

// Warn provides a mock function with given fields: message, fields
func (_m *MockLogger) Warn(message string, fields map[string]any) {
	_m.Called(message, fields)
}

type MockLogger_Warn_Call struct {
	*mock.Call
}

func (_e *MockLogger_Expecter) Warn(message interface{}, fields interface{}) *MockLogger_Warn_Call {
	return &MockLogger_Warn_Call{Call: _e.mock.On("Warn", message, fields)}
}

func (_c *MockLogger_Warn_Call) Run(run func(message string, fields map[string]any)) *MockLogger_Warn_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(map[string]any))
	})
	return _c
}

func (_c *MockLogger_Warn_Call) Return() *MockLogger_Warn_Call {
	_c.Call.Return()
	return _c
}

// Error provides a mock function with given fields: message, fields
func (_m *MockLogger) Error(message string, fields map[string]any) {
	_m.Called(message, fields)
}

type MockLogger_Error_Call struct {
	*mock.Call
}

func (_e *MockLogger_Expecter) Error(message interface{}, fields interface{}) *MockLogger_Error_Call {
	return &MockLogger_Error_Call{Call: _e.mock.On("Error", message, fields)}
}

func (_c *MockLogger_Error_Call) Run(run func(message string, fields map[string]any)) *MockLogger_Error_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(map[string]any))
	})
	return _c
}

func (_c *MockLogger_Error_Call) Return() *MockLogger_Error_Call {
	_c.Call.Return()
	return _c
}

// Flush provides a mock function with no fields
func (_m *MockLogger) Flush() error {
	ret := _m.Called()
	return ret.Error(0)
}

type MockLogger_Flush_Call struct {
	*mock.Call
}

func (_e *MockLogger_Expecter) Flush() *MockLogger_Flush_Call {
	return &MockLogger_Flush_Call{Call: _e.mock.On("Flush")}
}

func (_c *MockLogger_Flush_Call) Return(err error) *MockLogger_Flush_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockLogger creates a new instance of MockLogger
func NewMockLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := &MockLogger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
