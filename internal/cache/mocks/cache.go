package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (_m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	ret := _m.Called(ctx, key, value)

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)

	return ret.Error(0)
}

// Delete records each key as its own argument.
func (_m *Cache) Delete(ctx context.Context, keys ...string) error {
	args := []any{ctx}
	for _, k := range keys {
		args = append(args, k)
	}

	ret := _m.Called(args...)

	return ret.Error(0)
}

func (_m *Cache) Incr(ctx context.Context, key string) (int64, error) {
	ret := _m.Called(ctx, key)

	r0 := ret.Get(0).(int64)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *Cache) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

// NewCache creates a Cache mock that asserts its expectations on cleanup.
func NewCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *Cache {
	m := &Cache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
