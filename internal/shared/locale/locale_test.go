package locale

import (
	"strings"
	"testing"
)

func TestCatalogs_HaveSameKeys(t *testing.T) {
	for id := range english {
		if _, ok := arabic[id]; !ok {
			t.Errorf("Arabic catalog misses %q", id)
		}
	}
	for id := range arabic {
		if _, ok := english[id]; !ok {
			t.Errorf("English catalog misses %q", id)
		}
	}
}

func TestT_RendersTemplateData(t *testing.T) {
	tr := New("en")
	got := tr.T(MsgWarn, map[string]any{"Target": "@bob", "Count": 2, "Threshold": 3})
	if !strings.Contains(got, "@bob") || !strings.Contains(got, "2/3") {
		t.Errorf("T(MsgWarn) = %q", got)
	}
}

func TestT_Arabic(t *testing.T) {
	tr := New("ar")
	if got := tr.T(MsgReminder, map[string]any{"Text": "اجتماع"}); got != "🔔 تذكير: اجتماع" {
		t.Errorf("T(MsgReminder) = %q", got)
	}
}

func TestNew_UnknownLanguageFallsBack(t *testing.T) {
	tr := New("klingon!!")
	if tr.Language().String() != "en" {
		t.Errorf("Language = %s, want en", tr.Language())
	}
	if got := tr.T(MsgPinOK); got != "✅ Message pinned" {
		t.Errorf("T(MsgPinOK) = %q", got)
	}
}

func TestT_MissingID(t *testing.T) {
	if got := New("en").T("does.not.exist"); got != "does.not.exist" {
		t.Errorf("T(missing) = %q", got)
	}
}
