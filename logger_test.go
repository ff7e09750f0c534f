package px

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultIsSilentAndNonNil(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	// Must be callable without any setup.
	Logger().Info("this message is discarded")
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	src := mustImage(t, 2, 2, Gray)
	src.Fill(0.5)
	if _, err := Apply(Then(Invert{}, Box(3)), src); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "materializing intermediate image") {
		t.Errorf("expected materialization debug log, got %q", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Logger().Info("discarded")
	if buf.Len() != 0 {
		t.Errorf("logger still active after SetLogger(nil): %q", buf.String())
	}
}
