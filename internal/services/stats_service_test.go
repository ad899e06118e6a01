package services

import (
	"context"
	stderrors "errors"
	"testing"
)

type fakeCounter struct {
	byType map[string]int64
	total  int64
	err    error
}

func (f fakeCounter) CountByType(context.Context) (map[string]int64, error) {
	return f.byType, f.err
}

func (f fakeCounter) Count(context.Context) (int64, error) {
	return f.total, f.err
}

func TestStatsService_Summary(t *testing.T) {
	counter := fakeCounter{byType: map[string]int64{"university": 4, "institute": 2}, total: 17}
	svc := NewStatsService(counter, counter)

	stats, err := svc.Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if stats.Universities != 4 || stats.Institutes != 2 || stats.Applications != 17 {
		t.Errorf("Summary() = %+v, want 4 universities, 2 institutes, 17 applications", *stats)
	}
}

func TestStatsService_SummaryEmpty(t *testing.T) {
	counter := fakeCounter{byType: map[string]int64{}}
	stats, err := NewStatsService(counter, counter).Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if *stats != (Stats{}) {
		t.Errorf("Summary() = %+v, want zeros", *stats)
	}
}

func TestStatsService_SummaryError(t *testing.T) {
	counter := fakeCounter{err: stderrors.New("db down")}
	if _, err := NewStatsService(counter, counter).Summary(context.Background(), 1); err == nil {
		t.Error("Summary() error = nil, want error")
	}
}
