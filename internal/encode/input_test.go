package encode

import (
	"strings"
	"testing"
)

func TestInput_PassThrough(t *testing.T) {
	in := map[string]any{
		"prompt":   "an astronaut riding a horse",
		"steps":    50,
		"strength": 0.8,
		"seeds":    []any{1, 2, 3},
	}

	out, err := Input(in)
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	if out["prompt"] != "an astronaut riding a horse" {
		t.Errorf("prompt = %v", out["prompt"])
	}
	if out["steps"] != 50 {
		t.Errorf("steps = %v", out["steps"])
	}
}

func TestInput_ReplacesReaders(t *testing.T) {
	in := map[string]any{
		"prompt": "describe this",
		"image":  strings.NewReader("fake image bytes"),
	}

	out, err := Input(in)
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}

	uri, ok := out["image"].(string)
	if !ok {
		t.Fatalf("image = %T, want string data URI", out["image"])
	}
	if !strings.HasPrefix(uri, "data:") || !strings.Contains(uri, ";base64,") {
		t.Errorf("image = %q, want base64 data URI", uri)
	}

	// Non-reader values stay untouched
	if out["prompt"] != "describe this" {
		t.Errorf("prompt = %v", out["prompt"])
	}
}

func TestInput_Nil(t *testing.T) {
	out, err := Input(nil)
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if out != nil {
		t.Errorf("out = %v, want nil", out)
	}
}

func TestDataURI(t *testing.T) {
	uri, err := DataURI(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("DataURI() error = %v", err)
	}

	want := "data:text/plain; charset=utf-8;base64,aGVsbG8="
	if uri != want {
		t.Errorf("DataURI() = %q, want %q", uri, want)
	}
}
