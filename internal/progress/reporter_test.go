package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf, Dir: "public"}
	r.Start(2)
	r.FileWritten(1, "index.html")
	r.FileWritten(2, "style.css")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"building public: 2 files", "[1/2] index.html", "[2/2] style.css", "wrote 2 files to public"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLineReporterIncompleteBuild(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf, Dir: "public"}
	r.Start(4)
	r.FileWritten(1, "index.html")
	r.Finish()

	if !strings.Contains(buf.String(), "build of public stopped after 1 of 4 files") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestBarReporterWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	r := &BarReporter{Out: &buf, Dir: "public"}
	r.Start(4)
	r.FileWritten(1, "index.html")
	r.Finish()

	if buf.Len() == 0 {
		t.Error("expected the bar to render to Out")
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	r, ok := NewReporter("public").(*LineReporter)
	if !ok {
		t.Fatal("expected a LineReporter when CI is set")
	}
	if r.Dir != "public" {
		t.Errorf("Dir = %q, want public", r.Dir)
	}
}
