package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// BloomRepository is a mock type for the BloomRepository type
type BloomRepository struct {
	mock.Mock
}

func (_m *BloomRepository) Add(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	ret := _m.Called(ctx, ids)
	return ret.Error(0)
}

var _ domain.BloomRepository = (*BloomRepository)(nil)
