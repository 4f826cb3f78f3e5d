package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		want    Options
		wantErr bool
	}{
		{"empty", "", Default(), false},
		{"json_defaults", `{"keepColors": false, "experimental": false}`, Default(), false},
		{"json_keep_colors", `{"keepColors": true}`, Options{KeepColors: true}, false},
		{"yaml", "experimental: true\nkeepColors: true\n", Options{KeepColors: true, Experimental: true}, false},
		{"unknown_keys_ignored", `{"experimental": true, "zoom": 3}`, Options{Experimental: true}, false},
		{"invalid_json", `{"keepColors": `, Default(), true},
		{"null", `null`, Default(), true},
		{"list", `[true, false]`, Default(), true},
		{"string", `"keepColors"`, Default(), true},
		{"wrong_type", `{"keepColors": "sometimes"}`, Default(), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode([]byte(c.data))
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestParseFallsBackToDefaults(t *testing.T) {
	for _, data := range []string{`{`, `42`, `[]`} {
		if got := Parse([]byte(data)); got != Default() {
			t.Fatalf("Parse(%q) = %+v, want defaults", data, got)
		}
	}
	if got := Parse([]byte(`{"experimental": true}`)); !got.Experimental {
		t.Fatalf("valid options were dropped")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "magic-options.json")
	if err := os.WriteFile(path, []byte(`{"keepColors": true}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil || !got.KeepColors {
		t.Fatalf("Load = %+v, %v", got, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "magic-options.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"experimental": true}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case opts := <-w.Events:
			if opts.Experimental {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("no reload event")
		}
	}
}
