package journal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arc/internal/core/canon"
)

func testReview(key, body string) canon.Review {
	r := canon.Review{Key: key, Body: body, AuthorName: "Unknown"}
	r.TextLen = canon.TextLen(r.Title, r.Body)
	return r
}

func TestAppendWritesOneLinePerReview(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reviews.ndjson")
	j, err := Open(path, false)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })

	batch := []canon.Review{
		testReview("r-1", "first"),
		testReview("r-2", "second"),
	}
	if err := j.Append(context.Background(), "batch-a", batch); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := j.Append(context.Background(), "batch-b", batch[:1]); err != nil {
		t.Fatalf("append second: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"review_key":"r-1"`) || !strings.Contains(lines[0], `"batch_id":"batch-a"`) {
		t.Fatalf("line 0: %s", lines[0])
	}
	if !strings.Contains(lines[2], `"batch_id":"batch-b"`) {
		t.Fatalf("line 2: %s", lines[2])
	}
}

func TestAppendEmptyBatchIsNoop(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reviews.ndjson")
	j, err := Open(path, true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })

	if err := j.Append(context.Background(), "b", nil); err != nil {
		t.Fatalf("empty append: %v", err)
	}
	info, _ := os.Stat(path)
	if info.Size() != 0 {
		t.Fatalf("file should stay empty, size=%d", info.Size())
	}
}

func TestTruncateClearsJournal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reviews.ndjson")
	j, err := Open(path, false)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })

	if err := j.Append(context.Background(), "b", []canon.Review{testReview("r-1", "x")}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := j.Truncate(); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	info, _ := os.Stat(path)
	if info.Size() != 0 {
		t.Fatalf("size after truncate: %d", info.Size())
	}

	// journal stays usable after truncate
	if err := j.Append(context.Background(), "b2", []canon.Review{testReview("r-2", "y")}); err != nil {
		t.Fatalf("append after truncate: %v", err)
	}
	rows, err := ReadAll(path)
	if err != nil || len(rows) != 1 {
		t.Fatalf("readall after truncate: %v %d", err, len(rows))
	}
}

func TestReadAllShapes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		return p
	}

	cases := []struct {
		name    string
		path    string
		want    int
		wantErr bool
	}{
		{
			name: "ndjson",
			path: write("a.ndjson", `{"review_key":"1"}`+"\n"+`{"review_key":"2"}`+"\n"),
			want: 2,
		},
		{
			name: "json array",
			path: write("b.json", `[{"review_key":"1"},{"review_key":"2"},{"review_key":"3"}]`),
			want: 3,
		},
		{
			name: "data wrapper",
			path: write("c.json", `{"data":[{"review_key":"1"}]}`),
			want: 1,
		},
		{
			name: "empty file",
			path: write("d.json", "   \n"),
			want: 0,
		},
		{
			name:    "broken line",
			path:    write("e.ndjson", `{"review_key":"1"}`+"\n"+`{oops`),
			wantErr: true,
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.json"),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rows, err := ReadAll(tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("readall: %v", err)
			}
			if len(rows) != tc.want {
				t.Fatalf("rows = %d want %d", len(rows), tc.want)
			}
		})
	}
}
