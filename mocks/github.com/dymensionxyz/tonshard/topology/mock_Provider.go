package topology

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	topology "github.com/dymensionxyz/tonshard/topology"

	types "github.com/dymensionxyz/tonshard/types"
)

type MockProvider struct {
	mock.Mock
}

type MockProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProvider) EXPECT() *MockProvider_Expecter {
	return &MockProvider_Expecter{mock: &_m.Mock}
}

func (_m *MockProvider) FetchActiveShards(ctx context.Context) ([]types.ShardID, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FetchActiveShards")
	}

	var r0 []types.ShardID
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]types.ShardID, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []types.ShardID); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]types.ShardID)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type MockProvider_FetchActiveShards_Call struct {
	*mock.Call
}

func (_e *MockProvider_Expecter) FetchActiveShards(ctx interface{}) *MockProvider_FetchActiveShards_Call {
	return &MockProvider_FetchActiveShards_Call{Call: _e.mock.On("FetchActiveShards", ctx)}
}

func (_c *MockProvider_FetchActiveShards_Call) Run(run func(ctx context.Context)) *MockProvider_FetchActiveShards_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProvider_FetchActiveShards_Call) Return(_a0 []types.ShardID, _a1 error) *MockProvider_FetchActiveShards_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProvider_FetchActiveShards_Call) RunAndReturn(run func(context.Context) ([]types.ShardID, error)) *MockProvider_FetchActiveShards_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockProvider) Init(config topology.Config, logger types.Logger) error {
	ret := _m.Called(config, logger)

	if len(ret) == 0 {
		panic("no return value specified for Init")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(topology.Config, types.Logger) error); ok {
		r0 = rf(config, logger)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type MockProvider_Init_Call struct {
	*mock.Call
}

func (_e *MockProvider_Expecter) Init(config interface{}, logger interface{}) *MockProvider_Init_Call {
	return &MockProvider_Init_Call{Call: _e.mock.On("Init", config, logger)}
}

func (_c *MockProvider_Init_Call) Run(run func(config topology.Config, logger types.Logger)) *MockProvider_Init_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(topology.Config), args[1].(types.Logger))
	})
	return _c
}

func (_c *MockProvider_Init_Call) Return(_a0 error) *MockProvider_Init_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProvider_Init_Call) RunAndReturn(run func(topology.Config, types.Logger) error) *MockProvider_Init_Call {
	_c.Call.Return(run)
	return _c
}

func NewMockProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockProvider {
	mock := &MockProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
