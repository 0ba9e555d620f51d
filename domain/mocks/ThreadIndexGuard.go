package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// ThreadIndexGuard is a mock type for the ThreadIndexGuard type
type ThreadIndexGuard struct {
	mock.Mock
}

func (_m *ThreadIndexGuard) IndexSyncStarted() uint64 {
	ret := _m.Called()
	return ret.Get(0).(uint64)
}

func (_m *ThreadIndexGuard) IndexSynced(token uint64) {
	_m.Called(token)
}

var _ domain.ThreadIndexGuard = (*ThreadIndexGuard)(nil)
