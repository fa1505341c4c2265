package theme

import (
	"os"
	"path/filepath"
	"testing"

	"gioui.org/unit"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()
	button := styles.Get("menuButton")
	if button.MarginLeft != -12 || button.MarginRight != 20 {
		t.Errorf("unexpected menu button margins: %+v", button)
	}
	margin := button.Margin()
	if margin.Left != unit.Dp(-12) || margin.Right != unit.Dp(20) {
		t.Errorf("unexpected inset: %+v", margin)
	}
	bar := styles.Get("appBar")
	if bar.Position != "static" || bar.Color != "primary" {
		t.Errorf("unexpected app bar style: %+v", bar)
	}
	if got := styles.Get("missing"); got != (Style{}) {
		t.Errorf("expected zero style for unknown component, got %+v", got)
	}
}

func TestMergeStylesKeepsUnnamedFields(t *testing.T) {
	base := DefaultStyles()
	merged, err := MergeStyles(base, []byte("menuButton:\n  marginRight: 8\nfooter:\n  color: secondary\n"))
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	button := merged.Get("menuButton")
	if button.MarginRight != 8 {
		t.Errorf("override not applied: %+v", button)
	}
	if button.MarginLeft != -12 {
		t.Errorf("unnamed field lost: %+v", button)
	}
	if merged.Get("footer").Color != "secondary" {
		t.Errorf("new component not added")
	}
	if base.Get("menuButton").MarginRight != 20 {
		t.Errorf("base modified by merge")
	}
}

func TestMergeStylesRejectsInvalidYAML(t *testing.T) {
	if _, err := MergeStyles(Styles{}, []byte("menuButton: [")); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := MergeStyles(Styles{}, []byte("menuButton:\n  marginLeft: wide\n")); err == nil {
		t.Errorf("expected a type error")
	}
}

func TestLoadStyles(t *testing.T) {
	styles, err := LoadStyles("")
	if err != nil {
		t.Fatalf("loading built-in styles: %v", err)
	}
	if styles.Get("appBar").Height != 64 {
		t.Errorf("unexpected built-in app bar height")
	}

	path := filepath.Join(t.TempDir(), "styles.yaml")
	if err := os.WriteFile(path, []byte("appBar:\n  height: 48\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	styles, err = LoadStyles(path)
	if err != nil {
		t.Fatalf("loading %s: %v", path, err)
	}
	if got := styles.Get("appBar"); got.Height != 48 || got.PaddingX != 24 {
		t.Errorf("unexpected merged app bar style: %+v", got)
	}

	if _, err := LoadStyles(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
