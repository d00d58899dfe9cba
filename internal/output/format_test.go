package output

import (
	"bytes"
	"testing"

	"itasks/internal/task"
	"itasks/internal/testutil"
)

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, 1, task.Task{ID: "1", Title: "Buy milk"})
	FormatTask(&buf, 12, task.Task{ID: "2", Title: "line one\nline two"})
	FormatTask(&buf, 3, task.Task{ID: "3", Title: "   "})

	testutil.Golden(t, "tasks", buf.Bytes())
}

func TestFormatTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	FormatTaskDetail(&buf, task.Task{ID: "42", Title: "T", Description: "2\tliters"})

	expected := "id:          42\ntitle:       T\ndescription: 2 liters\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatFieldErrors(t *testing.T) {
	var buf bytes.Buffer
	FormatFieldErrors(&buf, task.Validate(task.Draft{Description: "bad!"}))

	testutil.GoldenString(t, "field_errors", buf.String())
}
