package journal

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

type record struct {
	Seq  int    `json:"seq"`
	Note string `json:"note"`
}

func TestWriter_WriteScanRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "outcomes")

	for i := 0; i < 25; i++ {
		if err := w.Write(record{Seq: i, Note: "outcome"}); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var got []record
	err := Scan(dir, "outcomes", func(line []byte) error {
		var r record
		if err := json.Unmarshal(line, &r); err != nil {
			return err
		}
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 25 {
		t.Fatalf("records: got %d want 25", len(got))
	}
	for i, r := range got {
		if r.Seq != i {
			t.Fatalf("record %d out of order: %+v", i, r)
		}
	}
}

func TestScan_IgnoresOtherPrefixes(t *testing.T) {
	dir := t.TempDir()

	w1 := NewWriter(dir, "outcomes")
	w2 := NewWriter(dir, "audit")
	if err := w1.Write(record{Seq: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w2.Write(record{Seq: 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w2.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	n := 0
	err := Scan(dir, "outcomes", func(line []byte) error {
		if !strings.Contains(string(line), `"seq":1`) {
			t.Fatalf("unexpected line %s", line)
		}
		n++
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if n != 1 {
		t.Fatalf("lines: got %d want 1", n)
	}
}

func TestWriter_FileNaming(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(filepath.Join(dir, "nested"), "outcomes")
	if err := w.Write(record{Seq: 0}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "nested", "outcomes-*.jsonl.zst"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("files: got %v want exactly one", matches)
	}
}
