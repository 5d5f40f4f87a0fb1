package prefs

import "testing"

func TestTranslationLookup(t *testing.T) {
	if got := T(LangEN, KeySubmit); got != "Apply" {
		t.Errorf("en submit = %q", got)
	}
	if got := T(LangES, KeySubmit); got != "Postular" {
		t.Errorf("es submit = %q", got)
	}
}

func TestTranslationFallbacks(t *testing.T) {
	// unknown language falls back to English
	if got := T(Language("fr"), KeySubmit); got != "Apply" {
		t.Errorf("fr submit = %q, want the English string", got)
	}
	// unknown key falls back to the key itself, never an empty string
	if got := T(LangEN, "nonexistent.key"); got != "nonexistent.key" {
		t.Errorf("unknown key = %q", got)
	}
}

func TestEveryKeyTranslatedInBothLanguages(t *testing.T) {
	for key := range translations[LangEN] {
		if _, ok := translations[LangES][key]; !ok {
			t.Errorf("key %q missing from the Spanish table", key)
		}
	}
	for key := range translations[LangES] {
		if _, ok := translations[LangEN][key]; !ok {
			t.Errorf("key %q missing from the English table", key)
		}
	}
}
