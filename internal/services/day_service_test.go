package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/cyclelens/internal/models"
)

func TestDayServiceUpsertSyncsLastPeriod(t *testing.T) {
	config := testCycleConfig(t, "2024-01-01", 28, 5)
	logs := newMemoryDayLogRepository()
	configs := &memoryCycleConfigRepository{config: &config}
	service := NewDayService(logs, configs)

	entry, err := service.UpsertDayEntry(context.Background(), mustParseDay(t, "2024-01-30"), DayEntryInput{Flow: "light"})
	if err != nil {
		t.Fatalf("UpsertDayEntry returned error: %v", err)
	}
	if entry.Flow != models.FlowLight {
		t.Fatalf("expected light flow, got %q", entry.Flow)
	}
	if got := FormatDay(configs.config.LastPeriodDate); got != "2024-01-30" {
		t.Fatalf("expected last period to move to 2024-01-30, got %s", got)
	}

	if _, err := service.UpsertDayEntry(context.Background(), mustParseDay(t, "2024-01-31"), DayEntryInput{Flow: "medium"}); err != nil {
		t.Fatalf("UpsertDayEntry returned error: %v", err)
	}
	if got := FormatDay(configs.config.LastPeriodDate); got != "2024-01-30" {
		t.Fatalf("expected continuing flow to keep the episode start, got %s", got)
	}
	if configs.saves != 1 {
		t.Fatalf("expected one config save, got %d", configs.saves)
	}
}

func TestDayServiceUpsertNeverMovesLastPeriodBack(t *testing.T) {
	config := testCycleConfig(t, "2024-01-01", 28, 5)
	configs := &memoryCycleConfigRepository{config: &config}
	service := NewDayService(newMemoryDayLogRepository(), configs)

	if _, err := service.UpsertDayEntry(context.Background(), mustParseDay(t, "2023-12-01"), DayEntryInput{Flow: "heavy"}); err != nil {
		t.Fatalf("UpsertDayEntry returned error: %v", err)
	}
	if got := FormatDay(configs.config.LastPeriodDate); got != "2024-01-01" {
		t.Fatalf("expected last period to stay 2024-01-01, got %s", got)
	}
	if configs.saves != 0 {
		t.Fatalf("expected no config save, got %d", configs.saves)
	}
}

func TestDayServiceUpsertWithoutConfig(t *testing.T) {
	logs := newMemoryDayLogRepository()
	configs := &memoryCycleConfigRepository{}
	service := NewDayService(logs, configs)

	if _, err := service.UpsertDayEntry(context.Background(), mustParseDay(t, "2024-01-30"), DayEntryInput{Flow: "light"}); err != nil {
		t.Fatalf("UpsertDayEntry returned error: %v", err)
	}
	if configs.config != nil {
		t.Fatalf("expected no config to be created, got %+v", configs.config)
	}
	stored, err := service.FetchLogs(context.Background(), nil, nil)
	if err != nil || len(stored) != 1 {
		t.Fatalf("expected one stored log, got %d (%v)", len(stored), err)
	}
}

func TestDayServiceUpsertErrors(t *testing.T) {
	logs := newMemoryDayLogRepository()
	service := NewDayService(logs, &memoryCycleConfigRepository{})

	if _, err := service.UpsertDayEntry(context.Background(), mustParseDay(t, "2024-01-30"), DayEntryInput{Flow: "gushing"}); !errors.Is(err, ErrInvalidDayFlow) {
		t.Fatalf("expected ErrInvalidDayFlow, got %v", err)
	}

	logs.upsertErr = errors.New("disk full")
	if _, err := service.UpsertDayEntry(context.Background(), mustParseDay(t, "2024-01-30"), DayEntryInput{}); !errors.Is(err, ErrDayEntrySaveFailed) {
		t.Fatalf("expected ErrDayEntrySaveFailed, got %v", err)
	}
}

func TestDayServiceDeleteAndFetch(t *testing.T) {
	logs := newMemoryDayLogRepository(
		flowLog(t, "2024-01-01"),
		symptomLog(t, "2024-01-10", "Calm", "Headache"),
		flowLog(t, "2024-01-29"),
	)
	service := NewDayService(logs, &memoryCycleConfigRepository{})

	from := mustParseDay(t, "2024-01-05")
	to := mustParseDay(t, "2024-01-29")
	ranged, err := service.FetchLogs(context.Background(), &from, &to)
	if err != nil || len(ranged) != 2 {
		t.Fatalf("expected two logs in range, got %d (%v)", len(ranged), err)
	}

	deleted, err := service.DeleteDay(context.Background(), mustParseDay(t, "2024-01-10"))
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got %v (%v)", deleted, err)
	}
	deleted, err = service.DeleteDay(context.Background(), mustParseDay(t, "2024-01-10"))
	if err != nil || deleted {
		t.Fatalf("expected second delete to report missing day, got %v (%v)", deleted, err)
	}
}
