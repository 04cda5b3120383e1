package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spacesedan/texture/internal/models"
	"github.com/spacesedan/texture/internal/storage"
)

func seedStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comms.db")
	store, err := storage.CreateMessageStore(path)
	if err != nil {
		t.Fatalf("CreateMessageStore failed: %v", err)
	}
	defer store.Close()

	messages := []models.Message{
		{Sender: "FORGE", Content: "I'm anxious about this challenge.", Timestamp: "2026-01-30T10:00:00Z"},
		{Sender: "FORGE", Content: "We did it! I'm so happy and grateful!", Timestamp: "2026-01-30T10:01:00Z"},
		{Sender: "ATLAS", Content: "Taking a deep breath. Finding my calm center.", Timestamp: "2026-01-30T10:02:00Z"},
	}
	for _, msg := range messages {
		if err := store.InsertMessage(context.Background(), msg); err != nil {
			t.Fatalf("InsertMessage failed: %v", err)
		}
	}
	return path
}

func TestScanCommand(t *testing.T) {
	path := seedStore(t)

	out, err := runCommand(t, "scan", "--db", path)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(out, "Analyzed 3 of 3 messages") {
		t.Errorf("output missing counts: %q", out)
	}
	if !strings.Contains(out, "Emotional Arc:") {
		t.Errorf("output missing arc: %q", out)
	}
}

func TestScanCommandSenderFilter(t *testing.T) {
	path := seedStore(t)

	out, err := runCommand(t, "scan", "--db", path, "--sender", "ATLAS")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(out, "Analyzed 1 of 1 messages") {
		t.Errorf("output missing filtered counts: %q", out)
	}
	if !strings.Contains(out, "PEACE") {
		t.Errorf("output missing PEACE dominant: %q", out)
	}
}
