package topology

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	ton "github.com/xssnick/tonutils-go/ton"
)

type MockLiteAPI struct {
	mock.Mock
}

type MockLiteAPI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLiteAPI) EXPECT() *MockLiteAPI_Expecter {
	return &MockLiteAPI_Expecter{mock: &_m.Mock}
}

func (_m *MockLiteAPI) CurrentMasterchainInfo(ctx context.Context) (*ton.BlockIDExt, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for CurrentMasterchainInfo")
	}

	var r0 *ton.BlockIDExt
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*ton.BlockIDExt, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *ton.BlockIDExt); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ton.BlockIDExt)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type MockLiteAPI_CurrentMasterchainInfo_Call struct {
	*mock.Call
}

func (_e *MockLiteAPI_Expecter) CurrentMasterchainInfo(ctx interface{}) *MockLiteAPI_CurrentMasterchainInfo_Call {
	return &MockLiteAPI_CurrentMasterchainInfo_Call{Call: _e.mock.On("CurrentMasterchainInfo", ctx)}
}

func (_c *MockLiteAPI_CurrentMasterchainInfo_Call) Run(run func(ctx context.Context)) *MockLiteAPI_CurrentMasterchainInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockLiteAPI_CurrentMasterchainInfo_Call) Return(_a0 *ton.BlockIDExt, _a1 error) *MockLiteAPI_CurrentMasterchainInfo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLiteAPI_CurrentMasterchainInfo_Call) RunAndReturn(run func(context.Context) (*ton.BlockIDExt, error)) *MockLiteAPI_CurrentMasterchainInfo_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockLiteAPI) GetBlockShardsInfo(ctx context.Context, master *ton.BlockIDExt) ([]*ton.BlockIDExt, error) {
	ret := _m.Called(ctx, master)

	if len(ret) == 0 {
		panic("no return value specified for GetBlockShardsInfo")
	}

	var r0 []*ton.BlockIDExt
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *ton.BlockIDExt) ([]*ton.BlockIDExt, error)); ok {
		return rf(ctx, master)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *ton.BlockIDExt) []*ton.BlockIDExt); ok {
		r0 = rf(ctx, master)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*ton.BlockIDExt)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *ton.BlockIDExt) error); ok {
		r1 = rf(ctx, master)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type MockLiteAPI_GetBlockShardsInfo_Call struct {
	*mock.Call
}

func (_e *MockLiteAPI_Expecter) GetBlockShardsInfo(ctx interface{}, master interface{}) *MockLiteAPI_GetBlockShardsInfo_Call {
	return &MockLiteAPI_GetBlockShardsInfo_Call{Call: _e.mock.On("GetBlockShardsInfo", ctx, master)}
}

func (_c *MockLiteAPI_GetBlockShardsInfo_Call) Run(run func(ctx context.Context, master *ton.BlockIDExt)) *MockLiteAPI_GetBlockShardsInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*ton.BlockIDExt))
	})
	return _c
}

func (_c *MockLiteAPI_GetBlockShardsInfo_Call) Return(_a0 []*ton.BlockIDExt, _a1 error) *MockLiteAPI_GetBlockShardsInfo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLiteAPI_GetBlockShardsInfo_Call) RunAndReturn(run func(context.Context, *ton.BlockIDExt) ([]*ton.BlockIDExt, error)) *MockLiteAPI_GetBlockShardsInfo_Call {
	_c.Call.Return(run)
	return _c
}

func NewMockLiteAPI(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockLiteAPI {
	mock := &MockLiteAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
