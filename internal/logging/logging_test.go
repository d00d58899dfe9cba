package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Warn("shown", "id", "7")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug record to be dropped, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "id=7") {
		t.Errorf("expected warn record, got %q", out)
	}

	buf.Reset()
	New(&buf, true).Debug("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("expected debug record, got %q", buf.String())
	}
}
