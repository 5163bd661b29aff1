// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. When a field is
// nil the mock falls back to a small in-memory implementation that runs
// the real domain constructors and validation, so handler tests exercise
// the same rules the production services apply.
//
//	svc := mocks.NewMockTaskService()
//	svc.GetTaskFn = func(ctx context.Context, id int64) (*domain.Task, error) {
//	    return nil, errors.New("boom")
//	}
package mocks
