package ui

import (
	"strings"
	"sync"
	"testing"
)

func TestMarkdownRendererStripsHTML(t *testing.T) {
	r := newMarkdownRenderer("notty")
	lines, err := r.Render("Sports **day**<script>alert(1)</script>", 40)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := strings.Join(lines, "\n")
	if !strings.Contains(out, "day") || strings.Contains(out, "alert") {
		t.Fatalf("unexpected output %q", out)
	}
	if lines, err := r.Render("<b></b>", 40); err != nil || lines != nil {
		t.Fatalf("expected empty description to render nothing, got %q %v", lines, err)
	}
}

func TestMarkdownRendererConcurrentRenders(t *testing.T) {
	r := newMarkdownRenderer("notty")
	want, err := r.Render("# Fair\n\n- stalls\n- *games*", 40)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				got, err := r.Render("# Fair\n\n- stalls\n- *games*", 40)
				if err != nil {
					errs <- err.Error()
					return
				}
				if strings.Join(got, "\n") != strings.Join(want, "\n") {
					errs <- "output differs between renders"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatalf("concurrent render: %s", msg)
	}
}

func TestNormaliseStyle(t *testing.T) {
	if got := normaliseStyle(" Light "); got != "light" {
		t.Fatalf("expected light, got %q", got)
	}
	if got := normaliseStyle("neon"); got != "dark" {
		t.Fatalf("expected dark fallback, got %q", got)
	}
}
