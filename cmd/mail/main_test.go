package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func chdirRepoRoot(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(filepath.Join(wd, "..", "..")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestBuildMessageScheduleGenerated(t *testing.T) {
	chdirRepoRoot(t)

	body, err := json.Marshal(domain.MailMessage{
		Type: domain.MailTypeScheduleGenerated,
		To:   "team@example.com",
		Data: domain.ScheduleGeneratedMailData{
			HospitalName:    "강남연세안과",
			Year:            2026,
			Month:           6,
			DueDate:         "2026-06-25",
			TaskCount:       20,
			TotalHours:      42.5,
			EarlyStartDates: []string{"2026-06-02"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	m, err := buildMessage("scheduler@example.com", body)
	if err != nil {
		t.Fatalf("buildMessage error: %v", err)
	}

	var sb strings.Builder
	if _, err := m.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	if !strings.Contains(sb.String(), "team@example.com") {
		t.Fatal("recipient missing from message")
	}
}

func TestBuildMessageRejectsUnknownType(t *testing.T) {
	body := []byte(`{"type": "reset_password", "to": "team@example.com", "data": {}}`)
	if _, err := buildMessage("scheduler@example.com", body); err == nil {
		t.Fatal("expected error for unknown mail type")
	}
	if _, err := buildMessage("scheduler@example.com", []byte(`{`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
}
