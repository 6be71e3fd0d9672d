package schedjobs

import (
	"context"
	"testing"
	"time"
)

func TestCronJobMatchesEveryMinute(t *testing.T) {
	job := NewEveryMinEmptyCronJob("every-min")
	if !job.Matches(time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)) {
		t.Fatal("every-minute job should match any time")
	}
}

func TestCronJobMatchesSpecificTime(t *testing.T) {
	job := NewEveryMinEmptyCronJob("nightly")
	job.Minutes = BitsFromMinutes([]int{0})
	job.Hours = BitsFromHours([]int{3})

	if !job.Matches(time.Date(2026, 2, 10, 3, 0, 0, 0, time.UTC)) {
		t.Fatal("expected match at 03:00")
	}
	if job.Matches(time.Date(2026, 2, 10, 3, 1, 0, 0, time.UTC)) {
		t.Fatal("expected no match at 03:01")
	}
	if job.Matches(time.Date(2026, 2, 10, 4, 0, 0, 0, time.UTC)) {
		t.Fatal("expected no match at 04:00")
	}
}

func TestCronJobMatchesWeekday(t *testing.T) {
	job := NewEveryMinEmptyCronJob("mondays")
	job.Weekdays = BitsFromWeekdays([]int{1}) // Monday

	if !job.Matches(time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)) { // a Monday
		t.Fatal("expected match on Monday")
	}
	if job.Matches(time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)) { // a Tuesday
		t.Fatal("expected no match on Tuesday")
	}
}

func TestAddOneTimeJobRejectsPast(t *testing.T) {
	s := NewScheduler(context.Background())
	err := s.AddOneTimeJob(&OneTimeJob{
		ID:       "too-late",
		ExecTime: time.Now().Add(-time.Minute),
		Task:     func() error { return nil },
	})
	if err == nil {
		t.Fatal("expected error for past exec time")
	}
}

func TestAddDeleteCronJob(t *testing.T) {
	s := NewScheduler(context.Background())
	s.AddCronJob(NewEveryMinEmptyCronJob("a"))
	s.AddCronJob(NewEveryMinEmptyCronJob("b"))
	if len(s.GetCronJobs()) != 2 {
		t.Fatalf("expected 2 cron jobs, got %d", len(s.GetCronJobs()))
	}
	s.DeleteCronJob("a")
	jobs := s.GetCronJobs()
	if len(jobs) != 1 || jobs[0].ID != "b" {
		t.Fatalf("unexpected cron jobs after delete: %v", jobs)
	}
}
