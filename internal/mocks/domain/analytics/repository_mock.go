package analyticsmock

import (
	context "context"
	analytics "github.com/riskibarqy/drafty/internal/domain/analytics"
	bracket "github.com/riskibarqy/drafty/internal/domain/bracket"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the analytics.Repository type
type Repository struct {
	mock.Mock
}

// ReplaceTeamPoints provides a mock function with given fields: ctx, rows
func (_m *Repository) ReplaceTeamPoints(ctx context.Context, rows []analytics.TeamPoints) error {
	ret := _m.Called(ctx, rows)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceTeamPoints")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []analytics.TeamPoints) error); ok {
		r0 = rf(ctx, rows)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListTeamPoints provides a mock function with given fields: ctx
func (_m *Repository) ListTeamPoints(ctx context.Context) ([]analytics.TeamPoints, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListTeamPoints")
	}

	var r0 []analytics.TeamPoints
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]analytics.TeamPoints, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []analytics.TeamPoints); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]analytics.TeamPoints)
		}
	}
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReplaceBenchPoints provides a mock function with given fields: ctx, losses, totals
func (_m *Repository) ReplaceBenchPoints(ctx context.Context, losses []analytics.BenchLoss, totals []analytics.BenchTotal) error {
	ret := _m.Called(ctx, losses, totals)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceBenchPoints")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []analytics.BenchLoss, []analytics.BenchTotal) error); ok {
		r0 = rf(ctx, losses, totals)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReplaceBlunders provides a mock function with given fields: ctx, gw, rows
func (_m *Repository) ReplaceBlunders(ctx context.Context, gw int, rows []analytics.Blunder) error {
	ret := _m.Called(ctx, gw, rows)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceBlunders")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, []analytics.Blunder) error); ok {
		r0 = rf(ctx, gw, rows)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListBlunders provides a mock function with given fields: ctx
func (_m *Repository) ListBlunders(ctx context.Context) ([]analytics.Blunder, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListBlunders")
	}

	var r0 []analytics.Blunder
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]analytics.Blunder, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []analytics.Blunder); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]analytics.Blunder)
		}
	}
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReplaceBracketStandings provides a mock function with given fields: ctx, name, rows
func (_m *Repository) ReplaceBracketStandings(ctx context.Context, name string, rows []bracket.Standing) error {
	ret := _m.Called(ctx, name, rows)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceBracketStandings")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []bracket.Standing) error); ok {
		r0 = rf(ctx, name, rows)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// PruneStale provides a mock function with given fields: ctx, maxGW, brackets
func (_m *Repository) PruneStale(ctx context.Context, maxGW int, brackets []string) error {
	ret := _m.Called(ctx, maxGW, brackets)

	if len(ret) == 0 {
		panic("no return value specified for PruneStale")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, []string) error); ok {
		r0 = rf(ctx, maxGW, brackets)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReplaceTimeline provides a mock function with given fields: ctx, rows
func (_m *Repository) ReplaceTimeline(ctx context.Context, rows []analytics.TimelineRow) error {
	ret := _m.Called(ctx, rows)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceTimeline")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []analytics.TimelineRow) error); ok {
		r0 = rf(ctx, rows)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReplaceCumulativePoints provides a mock function with given fields: ctx, rows
func (_m *Repository) ReplaceCumulativePoints(ctx context.Context, rows []analytics.CumulativePoints) error {
	ret := _m.Called(ctx, rows)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceCumulativePoints")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []analytics.CumulativePoints) error); ok {
		r0 = rf(ctx, rows)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReplaceTransfers provides a mock function with given fields: ctx, top, bottom
func (_m *Repository) ReplaceTransfers(ctx context.Context, top []analytics.Blunder, bottom []analytics.Blunder) error {
	ret := _m.Called(ctx, top, bottom)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceTransfers")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []analytics.Blunder, []analytics.Blunder) error); ok {
		r0 = rf(ctx, top, bottom)
	} else {
		r0 = ret.Error(0)
	}

	return r0
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
