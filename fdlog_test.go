package fdlog

import (
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
)

// resetState snapshots the process-wide logger state and restores it when the
// test finishes. Tests in this package must not run in parallel.
func resetState(t *testing.T) {
	t.Helper()
	oldLevel := GetLevel()
	oldFd := Fd()
	oldOpts := *options()
	t.Cleanup(func() {
		SetLevel(oldLevel)
		SetFd(oldFd)
		Configure(oldOpts)
	})
}

// capture redirects the target descriptor to a pipe for the duration of fn
// and returns everything written to it.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	prev := Fd()
	SetFd(int(w.Fd()))
	done := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()
	fn()
	SetFd(prev)
	_ = w.Close()
	out := <-done
	_ = r.Close()
	return out
}

func TestLevelFiltering(t *testing.T) {
	resetState(t)
	out := capture(t, func() {
		SetLevel(ErrorLevel)
		Info("hello info (should NOT appear)")
		Error("boom")
	})
	if !strings.Contains(out, "[ERROR]") {
		t.Fatalf("missing error tag: %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("missing error message: %q", out)
	}
	if strings.Contains(out, "hello info") {
		t.Fatalf("suppressed record leaked: %q", out)
	}
}

func TestNewlineIntegrity(t *testing.T) {
	resetState(t)
	const n = 5
	out := capture(t, func() {
		SetLevel(TraceLevel)
		Info("first")
		Info("second")
		Info("third")
		Info("already terminated\n")
		Info("fifth")
	})
	if got := strings.Count(out, "\n"); got != n {
		t.Fatalf("newline count: got %d want %d\noutput: %q", got, n, out)
	}
	if got := strings.Count(out, "[INFO]"); got != n {
		t.Fatalf("level tag count: got %d want %d", got, n)
	}
	if out[len(out)-1] != '\n' {
		t.Fatalf("stream does not end in newline: %q", out)
	}
}

func TestConcurrentRecordsDoNotInterleave(t *testing.T) {
	resetState(t)
	const workers, records = 8, 50
	out := capture(t, func() {
		SetLevel(TraceLevel)
		var wg sync.WaitGroup
		for g := 0; g < workers; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for i := 0; i < records; i++ {
					Info("worker=%d seq=%d end", g, i)
				}
			}(g)
		}
		wg.Wait()
	})
	if out == "" || out[len(out)-1] != '\n' {
		t.Fatalf("stream not newline terminated")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != workers*records {
		t.Fatalf("line count: got %d want %d", len(lines), workers*records)
	}
	re := regexp.MustCompile(`worker=(\d+) seq=(\d+) end$`)
	seen := make(map[string]bool, workers*records)
	for _, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("record boundary inside another record: %q", line)
		}
		seen[m[1]+":"+m[2]] = true
	}
	if len(seen) != workers*records {
		t.Fatalf("distinct records: got %d want %d", len(seen), workers*records)
	}
}

func TestTruncationSafety(t *testing.T) {
	resetState(t)
	long := strings.Repeat("x", 2*LineMax)
	out := capture(t, func() {
		SetLevel(TraceLevel)
		Info("%s", long)
	})
	if len(out) != LineMax-1 {
		t.Fatalf("truncated record length: got %d want %d", len(out), LineMax-1)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Fatalf("newline count: got %d want 1", got)
	}
	if out[len(out)-1] != '\n' {
		t.Fatalf("truncated record not newline terminated")
	}
	if !strings.HasSuffix(out, truncMarker+"\n") {
		t.Fatalf("missing truncation marker at tail: %q", out[len(out)-8:])
	}
}

func TestRecordShape(t *testing.T) {
	resetState(t)
	out := capture(t, func() {
		SetLevel(TraceLevel)
		InfoGroup("net", "dial ok")
	})
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} \[INFO\]\t\(tid:\d+\) <fdlog_test\.go:\d+> \[net\] dial ok\n$`)
	if !re.MatchString(out) {
		t.Fatalf("record shape mismatch: %q", out)
	}
}

func TestShortTIDForm(t *testing.T) {
	resetState(t)
	Configure(Options{ShortTID: true})
	out := capture(t, func() {
		SetLevel(TraceLevel)
		Info("short tid")
	})
	if !regexp.MustCompile(`\(t#[0-9a-f]{6}\) `).MatchString(out) {
		t.Fatalf("short tid block missing: %q", out)
	}
}

func TestOmitTIDAndLine(t *testing.T) {
	resetState(t)
	Configure(Options{OmitTID: true, OmitLine: true})
	out := capture(t, func() {
		SetLevel(TraceLevel)
		Info("slim prefix")
	})
	if strings.Contains(out, "(tid:") || strings.Contains(out, "(t#") {
		t.Fatalf("tid block present despite OmitTID: %q", out)
	}
	if !regexp.MustCompile(`<fdlog_test\.go> `).MatchString(out) {
		t.Fatalf("call-site block should drop the line number: %q", out)
	}
}

func TestFatalDoesNotTerminate(t *testing.T) {
	resetState(t)
	out := capture(t, func() {
		SetLevel(TraceLevel)
		Fatal("the sky is falling")
	})
	if !strings.Contains(out, "[FATAL]") || !strings.Contains(out, "the sky is falling") {
		t.Fatalf("fatal record missing: %q", out)
	}
}

func TestBanner(t *testing.T) {
	resetState(t)
	out := capture(t, func() {
		SetLevel(TraceLevel)
		Banner()
	})
	if !strings.Contains(out, "[fdlog]") || !strings.Contains(out, "logger ready") {
		t.Fatalf("banner record missing: %q", out)
	}
}

func TestOutputReportsCallerOfWrapper(t *testing.T) {
	resetState(t)
	wrapper := func(format string, args ...any) {
		Output(2, InfoLevel, "", format, args...)
	}
	out := capture(t, func() {
		SetLevel(TraceLevel)
		wrapper("wrapped record")
	})
	if !strings.Contains(out, "<fdlog_test.go:") {
		t.Fatalf("wrapper call site missing: %q", out)
	}
	if !strings.Contains(out, "wrapped record") {
		t.Fatalf("wrapped message missing: %q", out)
	}
}

func TestWriteFailuresAreSilentButCounted(t *testing.T) {
	resetState(t)
	before := DroppedWrites()
	SetLevel(TraceLevel)
	SetFd(-1)
	Error("nowhere to go")
	if got := DroppedWrites(); got != before+1 {
		t.Fatalf("dropped writes: got %d want %d", got, before+1)
	}
}

func TestGroupVariantsCarryGroupTag(t *testing.T) {
	resetState(t)
	out := capture(t, func() {
		SetLevel(TraceLevel)
		TraceGroup("a", "t")
		DebugGroup("b", "d")
		WarnGroup("c", "w")
		ErrorGroup("d", "e")
		LogGroup(InfoLevel, "e", "l")
	})
	for _, want := range []string{"[a] t", "[b] d", "[c] w", "[d] e", "[e] l"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing grouped record %q in %q", want, out)
		}
	}
}
