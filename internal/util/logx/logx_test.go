package logx

import (
	"strings"
	"testing"
	"time"
)

func lastLine(t *testing.T) string {
	t.Helper()
	lines := Lines()
	if len(lines) == 0 {
		t.Fatal("no log lines recorded")
	}
	return lines[len(lines)-1]
}

func TestRequestfSuccessLogsInfo(t *testing.T) {
	SetLevel(Info)
	Requestf("http://localhost:8080/v1/2025/teams", 200, 42*time.Millisecond)
	line := lastLine(t)
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "-> 200") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "42ms") {
		t.Fatalf("duration missing from %q", line)
	}
}

func TestRequestfFailureLogsWarn(t *testing.T) {
	SetLevel(Info)
	Requestf("http://localhost:8080/v1/2025/teams", 500, time.Millisecond)
	if line := lastLine(t); !strings.Contains(line, "WARN") || !strings.Contains(line, "-> 500") {
		t.Fatalf("unexpected line %q", line)
	}
}

func TestRequestfNoResponseLogsWarn(t *testing.T) {
	SetLevel(Info)
	Requestf("http://localhost:9/nope", 0, time.Second)
	if line := lastLine(t); !strings.Contains(line, "WARN") || !strings.Contains(line, "-> 0") {
		t.Fatalf("unexpected line %q", line)
	}
}
