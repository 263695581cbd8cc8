package ui

import "testing"

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got '%s'", l.GetCurrentLanguage())
	}

	l.SetLanguage("pt")
	if l.GetText(KeyDownload) != "Baixar" {
		t.Errorf("Expected Portuguese text, got '%s'", l.GetText(KeyDownload))
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected unknown language to be ignored, got '%s'", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to 'en', got '%s'", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key as fallback, got '%s'", got)
	}
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()

	for _, lang := range l.languageCodes() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("No texts for %s", lang)
			continue
		}
		for key := range l.texts["en"] {
			if texts[key] == "" {
				t.Errorf("Missing %s text for key %s", lang, key)
			}
		}
	}
}

func TestLanguageCodesSorted(t *testing.T) {
	l := NewLocalization()
	codes := l.languageCodes()
	want := []string{"en", "pt", "ru"}
	if len(codes) != len(want) {
		t.Fatalf("Expected %v, got %v", want, codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, codes)
		}
	}
}
