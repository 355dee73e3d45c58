package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf})

	l := WithOperation(WithComponent("ui"), "stroke")
	l.Debug("stroke committed", slog.Int("points", 3), slog.Bool("ok", true))

	line := buf.String()
	for _, want := range []string{"DBG", "stroke committed", "component=ui", "op=stroke", "points=3", "ok=true", "app=fatfingerpicasso"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "warn", Output: &buf})
	L().Info("hidden")
	L().Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "WRN shown") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestJSONFormatAndFile(t *testing.T) {
	var buf bytes.Buffer
	fpath := filepath.Join(t.TempDir(), "ffp.log")
	Init(Options{Level: "info", Format: "json", File: fpath, Output: &buf})

	WithComponent("export").Info("exported", slog.String("kind", "pdf"))

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("console output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["component"] != "export" || rec["kind"] != "pdf" {
		t.Fatalf("unexpected record %v", rec)
	}

	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	var last string
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			last = s
		}
	}
	if !strings.Contains(last, `"msg":"exported"`) {
		t.Fatalf("file log missing record: %q", last)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FFP_LOG_LEVEL", "debug")
	t.Setenv("FFP_LOG_FORMAT", "json")
	t.Setenv("FFP_LOG_SOURCE", "TRUE")
	t.Setenv("FFP_LOG_FILE", "/tmp/x.log")
	o := FromEnv()
	if o.Level != "debug" || o.Format != "json" || !o.AddSource || o.File != "/tmp/x.log" {
		t.Fatalf("unexpected options %+v", o)
	}
}
