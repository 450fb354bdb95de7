package leaguemock

import (
	context "context"
	league "github.com/riskibarqy/drafty/internal/domain/league"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the league.Repository type
type Repository struct {
	mock.Mock
}

// UpsertEntries provides a mock function with given fields: ctx, entries
func (_m *Repository) UpsertEntries(ctx context.Context, entries []league.Entry) error {
	ret := _m.Called(ctx, entries)

	if len(ret) == 0 {
		panic("no return value specified for UpsertEntries")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []league.Entry) error); ok {
		r0 = rf(ctx, entries)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpsertLeague provides a mock function with given fields: ctx, item
func (_m *Repository) UpsertLeague(ctx context.Context, item league.League) error {
	ret := _m.Called(ctx, item)

	if len(ret) == 0 {
		panic("no return value specified for UpsertLeague")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, league.League) error); ok {
		r0 = rf(ctx, item)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpsertStandings provides a mock function with given fields: ctx, items
func (_m *Repository) UpsertStandings(ctx context.Context, items []league.Standing) error {
	ret := _m.Called(ctx, items)

	if len(ret) == 0 {
		panic("no return value specified for UpsertStandings")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []league.Standing) error); ok {
		r0 = rf(ctx, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpsertStatuses provides a mock function with given fields: ctx, items
func (_m *Repository) UpsertStatuses(ctx context.Context, items []league.EventStatus) error {
	ret := _m.Called(ctx, items)

	if len(ret) == 0 {
		panic("no return value specified for UpsertStatuses")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []league.EventStatus) error); ok {
		r0 = rf(ctx, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpsertProfiles provides a mock function with given fields: ctx, items
func (_m *Repository) UpsertProfiles(ctx context.Context, items []league.Profile) error {
	ret := _m.Called(ctx, items)

	if len(ret) == 0 {
		panic("no return value specified for UpsertProfiles")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []league.Profile) error); ok {
		r0 = rf(ctx, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpsertOwnership provides a mock function with given fields: ctx, items
func (_m *Repository) UpsertOwnership(ctx context.Context, items []league.Ownership) error {
	ret := _m.Called(ctx, items)

	if len(ret) == 0 {
		panic("no return value specified for UpsertOwnership")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []league.Ownership) error); ok {
		r0 = rf(ctx, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpsertDraftChoices provides a mock function with given fields: ctx, items
func (_m *Repository) UpsertDraftChoices(ctx context.Context, items []league.DraftChoice) error {
	ret := _m.Called(ctx, items)

	if len(ret) == 0 {
		panic("no return value specified for UpsertDraftChoices")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []league.DraftChoice) error); ok {
		r0 = rf(ctx, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListEntries provides a mock function with given fields: ctx
func (_m *Repository) ListEntries(ctx context.Context) ([]league.Entry, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListEntries")
	}

	var r0 []league.Entry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]league.Entry, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []league.Entry); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]league.Entry)
		}
	}
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MaxEvent provides a mock function with given fields: ctx
func (_m *Repository) MaxEvent(ctx context.Context) (int, bool, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for MaxEvent")
	}

	var r0 int
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context) (int, bool, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) int); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int)
	}
	if rf, ok := ret.Get(1).(func(context.Context) bool); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Get(1).(bool)
	}
	if rf, ok := ret.Get(2).(func(context.Context) error); ok {
		r2 = rf(ctx)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewRepository creates a new instance of Repository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	mock := &Repository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
