package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_WritesServiceFields(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Service: "store-api", Env: "test", Output: &buf})
	log.Debug().Str("username", "alice").Msg("user created")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one json line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "store-api" || line["env"] != "test" {
		t.Fatalf("missing service fields: %v", line)
	}
	if line["level"] != "debug" || line["message"] != "user created" || line["username"] != "alice" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var first, second bytes.Buffer
	Init(Options{Level: "warn", Output: &first})
	log := Init(Options{Level: "debug", Output: &second})

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	if second.Len() != 0 {
		t.Fatalf("second Init should be ignored, got %q", second.String())
	}
	if bytes.Contains(first.Bytes(), []byte("dropped")) || !bytes.Contains(first.Bytes(), []byte("kept")) {
		t.Fatalf("unexpected output: %q", first.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
