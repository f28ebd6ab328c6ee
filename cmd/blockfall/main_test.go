package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/engine"
)

func TestParseShapeArg(t *testing.T) {
	tests := []struct {
		arg       string
		expected  engine.ShapeID
		expectErr bool
	}{
		{"0", 0, false},
		{"6", 6, false},
		{"T", 5, false},
		{"i", 4, false},
		{"7", 0, true},
		{"-1", 0, true},
		{"X", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := parseShapeArg(tc.arg)
			if tc.expectErr {
				if err == nil {
					t.Errorf("parseShapeArg(%q) should fail", tc.arg)
				}
				return
			}
			if err != nil || got != tc.expected {
				t.Errorf("parseShapeArg(%q) = %v, %v; want %v", tc.arg, got, err, tc.expected)
			}
		})
	}
}

func TestRenderRotations(t *testing.T) {
	out := renderRotations(4)
	for _, label := range []string{"r0", "r1", "r2", "r3"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing %s in:\n%s", label, out)
		}
	}
	// Rotation 1 of the I piece is a horizontal bar.
	if !strings.Contains(out, "####") {
		t.Errorf("horizontal I missing in:\n%s", out)
	}
}

func TestRunShapesSingle(t *testing.T) {
	var buf bytes.Buffer
	shapesCmd.SetOut(&buf)
	defer shapesCmd.SetOut(nil)

	if err := runShapes(shapesCmd, []string{"O"}); err != nil {
		t.Fatalf("runShapes() failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "O (0)\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "L (1)") {
		t.Error("only the requested shape should be printed")
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("unknown level should fail")
	}

	path := filepath.Join(t.TempDir(), "blockfall.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("piece spawned", "shape", "T")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "piece spawned") || !strings.Contains(string(data), "blockfall") {
		t.Errorf("log file content = %q", data)
	}
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[gravity]\nperiod_ms = 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flagConfig = path
	defer func() { flagConfig = "" }()

	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	defer configCmd.SetOut(nil)

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# source: "+path) {
		t.Errorf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "period_ms: 120") {
		t.Errorf("file value missing:\n%s", out)
	}
}
