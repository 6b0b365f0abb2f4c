package stickr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogState(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	feed(e,
		ev(EventDown, 1, pt(1, 0, 0)),
		move(pt(1, 10, 15)),
	)
	e.LogState(newLogger(&buf, log.InfoLevel))

	out := buf.String()
	for _, want := range []string{"stickr", "transform", "mode=translate", "tx=10", "ty=15", "scale=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeLogsIgnoredEvents(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	e.SetLogger(newLogger(&buf, log.InfoLevel))

	feed(e, move(pt(9, 1, 1)))
	if buf.Len() != 0 {
		t.Fatalf("info logger wrote debug output:\n%s", buf.String())
	}

	e.SetDebugMode(true)
	feed(e, move(pt(9, 1, 1)))
	if !strings.Contains(buf.String(), "ignored event") {
		t.Errorf("debug output missing ignored event:\n%s", buf.String())
	}

	buf.Reset()
	e.SetDebugMode(false)
	feed(e, move(pt(9, 1, 1)))
	if buf.Len() != 0 {
		t.Errorf("debug output after disabling:\n%s", buf.String())
	}
}

func TestDebugModeLogsClamp(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	e.SetLogger(newLogger(&buf, log.InfoLevel))
	e.SetDebugMode(true)

	feed(e,
		ev(EventDown, 1, pt(1, 0, 0)),
		ev(EventPointerDown, 2, pt(1, 0, 0), pt(2, 0, 400)),
		move(pt(1, 0, 0), pt(2, 0, 4000)),
	)
	assertNear(t, "scale", e.State().Scale, DefaultMaxScale)
	if !strings.Contains(buf.String(), "clamped scale") {
		t.Errorf("debug output missing clamp:\n%s", buf.String())
	}
}
