package render

import "testing"

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(true).Name; got != "default" {
		t.Errorf("ThemeFor(true).Name = %q, want default", got)
	}
	if got := ThemeFor(false).Name; got != "mono" {
		t.Errorf("ThemeFor(false).Name = %q, want mono", got)
	}
}

func TestMonoTheme_RendersPlainText(t *testing.T) {
	theme := MonoTheme()
	for name, style := range map[string]string{
		"success": theme.Success.Render("ok"),
		"error":   theme.Error.Render("ok"),
		"muted":   theme.Muted.Render("ok"),
	} {
		if style != "ok" {
			t.Errorf("%s style altered text: %q", name, style)
		}
	}
}
