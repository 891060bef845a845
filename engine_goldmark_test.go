//go:build !blackfriday

package md2html

import (
	"strings"
	"testing"
)

func TestEngineName_Goldmark(t *testing.T) {
	t.Parallel()

	if EngineName != "goldmark" {
		t.Errorf("EngineName = %q, want goldmark", EngineName)
	}
}

func TestToHTML_GoldmarkTaskLists(t *testing.T) {
	t.Parallel()

	src := []byte("- [x] done\n- [ ] todo\n")

	out, ok := ToHTML(src, 0)
	if !ok {
		t.Fatal("ToHTML() reported absent")
	}
	if !strings.Contains(string(out), `type="checkbox"`) {
		t.Errorf("ToHTML() = %q, want task list checkboxes", out)
	}

	out, ok = ToHTML(src, NoTaskLists)
	if !ok {
		t.Fatal("ToHTML(NoTaskLists) reported absent")
	}
	if strings.Contains(string(out), `type="checkbox"`) {
		t.Errorf("ToHTML(NoTaskLists) = %q, want no checkboxes", out)
	}
}
