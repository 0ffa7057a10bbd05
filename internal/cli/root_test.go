// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/huepoint/internal/cli"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), err
}

func TestSampleCommand(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		out, err := run(t, "sample", "200", "150", "--width", "400", "--height", "300", "--half-size", "10", "--preview=false")
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}
		for _, want := range []string{"200, 150", "0.5, 0.5", "#808040", "rgb(128, 128, 64)"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "object") {
			t.Errorf("uncommitted sample printed names:\n%s", out)
		}
	})

	t.Run("Commit", func(t *testing.T) {
		out, err := run(t, "sample", "200", "150", "--width", "400", "--height", "300", "--commit", "--preview=false")
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}
		for _, want := range []string{"ntc", "Pesto", "html", "object"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := run(t, "sample", "0", "0", "--width", "400", "--height", "300", "--half-size", "10", "--commit", "--format", "json")
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}

		var report struct {
			Target struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"target"`
			Colour struct {
				Hex string `json:"hex"`
			} `json:"colour"`
			Resolved struct {
				Hex    string `json:"hex"`
				Object string `json:"object"`
				Names  []struct {
					Source string `json:"source"`
					Name   string `json:"name"`
				} `json:"names"`
			} `json:"resolved"`
		}
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}

		if report.Target.X != 10 || report.Target.Y != 10 {
			t.Errorf("target = %+v, want (10, 10)", report.Target)
		}
		if report.Resolved.Hex == "" || len(report.Resolved.Names) != 2 {
			t.Errorf("resolved = %+v, want hex and two names", report.Resolved)
		}
		if report.Resolved.Names[0].Source != "ntc" || report.Resolved.Names[1].Source != "html" {
			t.Errorf("name sources = %+v, want ntc then html", report.Resolved.Names)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
		}{
			{"MissingWidth", []string{"sample", "1", "1", "--height", "10"}},
			{"BadCoordinate", []string{"sample", "x", "1", "--width", "10", "--height", "10"}},
			{"ZeroBounds", []string{"sample", "1", "1", "--width", "0", "--height", "10"}},
			{"NegativeHalfSize", []string{"sample", "1", "1", "--width", "10", "--height", "10", "--half-size", "-1"}},
			{"BadFormat", []string{"sample", "1", "1", "--width", "10", "--height", "10", "--format", "xml"}},
			{"BadMetric", []string{"sample", "1", "1", "--width", "10", "--height", "10", "--metric", "manhattan"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := run(t, tt.args...); err == nil {
					t.Errorf("%v succeeded, want error", tt.args)
				}
			})
		}
	})
}

func TestNameCommand(t *testing.T) {
	out, err := run(t, "name", "FF0000", "#7fffd4", "808040", "--preview=false")
	if err != nil {
		t.Fatalf("name failed: %v", err)
	}

	for _, want := range []string{"COLOUR", "NTC", "HTML", "OBJECT", "Red", "a fire engine", "Aquamarine", "a tropical lagoon", "Pesto"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	t.Run("SingleSource", func(t *testing.T) {
		out, err := run(t, "name", "00FFFF", "--sources", "html", "--preview=false")
		if err != nil {
			t.Fatalf("name failed: %v", err)
		}
		if strings.Contains(out, "NTC") || !strings.Contains(out, "aqua") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("MaxWidth", func(t *testing.T) {
		out, err := run(t, "name", "7FFFD4", "--sources", "html", "--max-width", "5", "--preview=false")
		if err != nil {
			t.Fatalf("name failed: %v", err)
		}
		if strings.Contains(out, "aquamarine") || !strings.Contains(out, "aqua…") {
			t.Errorf("name column not truncated:\n%s", out)
		}
		if !strings.Contains(out, "a tropical lagoon") {
			t.Errorf("object column truncated:\n%s", out)
		}
	})

	t.Run("InvalidHex", func(t *testing.T) {
		if _, err := run(t, "name", "GGGGGG"); err == nil {
			t.Error("name GGGGGG succeeded, want error")
		}
	})

	t.Run("NoArgs", func(t *testing.T) {
		if _, err := run(t, "name"); err == nil {
			t.Error("name without args succeeded, want error")
		}
	})
}

func TestNamesCommand(t *testing.T) {
	out, err := run(t, "names", "--source", "html", "--preview=false")
	if err != nil {
		t.Fatalf("names failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 147+2 {
		t.Errorf("names printed %d lines, want %d", len(lines), 147+2)
	}
	if !strings.HasPrefix(lines[2], "#F0F8FF") {
		t.Errorf("first entry = %q, want aliceblue", lines[2])
	}

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mine.txt")
		if err := os.WriteFile(path, []byte("# mine\nFF0000 Red\n0000FF Blue\n"), 0o600); err != nil {
			t.Fatalf("failed to write table: %v", err)
		}
		out, err := run(t, "names", "--source", path, "--format", "json")
		if err != nil {
			t.Fatalf("names failed: %v", err)
		}
		var entries []struct {
			Hex  string `json:"hex"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(out), &entries); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(entries) != 2 || entries[1].Name != "Blue" {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := run(t, "names", "--source", filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("names with a missing file succeeded, want error")
		}
	})

	t.Run("BuiltInSourceIgnoresCase", func(t *testing.T) {
		for _, source := range []string{"NTC", "Html"} {
			out, err := run(t, "names", "--source", source, "--format", "json")
			if err != nil {
				t.Fatalf("names --source %s failed: %v", source, err)
			}
			var entries []struct {
				Hex string `json:"hex"`
			}
			if err := json.Unmarshal([]byte(out), &entries); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if len(entries) == 0 {
				t.Errorf("names --source %s listed no entries", source)
			}
		}
	})

	t.Run("MaxWidth", func(t *testing.T) {
		out, err := run(t, "names", "--source", "html", "--max-width", "6", "--preview=false")
		if err != nil {
			t.Fatalf("names failed: %v", err)
		}
		if strings.Contains(out, "lightgoldenrodyellow") || !strings.Contains(out, "light…") {
			t.Errorf("name column not truncated:\n%s", out)
		}
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if len(lines) != 147+2 {
			t.Errorf("names printed %d lines, want %d", len(lines), 147+2)
		}
	})

	t.Run("NegativeMaxWidth", func(t *testing.T) {
		if _, err := run(t, "names", "--max-width", "-1"); err == nil {
			t.Error("names with a negative max width succeeded, want error")
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "huepoint version ") {
		t.Errorf("version output = %q", out)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	out, err := run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	var info struct {
		Version  string `json:"version"`
		Platform string `json:"platform"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if info.Version == "" || info.Platform == "" {
		t.Errorf("info = %+v", info)
	}
}

func TestVerboseAndQuietConflict(t *testing.T) {
	if _, err := run(t, "version", "--verbose", "--quiet"); err == nil {
		t.Error("--verbose with --quiet succeeded, want error")
	}
}

func TestPlayRequiresTerminal(t *testing.T) {
	if _, err := run(t, "play"); err == nil {
		t.Error("play without a terminal succeeded, want error")
	}
}
