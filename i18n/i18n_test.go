package i18n

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"de/site.yaml": {Data: []byte(`locale: de
domain: site
messages:
  "Hello": "Hallo"
  "Discount": "100% Rabatt"
`)},
		"pt-BR/site.yaml": {Data: []byte(`messages:
  "Hello": "Olá"
`)},
		"de/other.yaml": {Data: []byte(`messages:
  "Hello": "Servus"
`)},
	}
	c, err := LoadFS(fsys, language.English)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return c
}

func TestFactory(t *testing.T) {
	tr := NewFactory("site")
	ts := tr("Hello")
	if diff := cmp.Diff(TranslationString{MsgID: "Hello", Domain: "site"}, ts); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if ts.String() != "Hello" {
		t.Errorf("String() = %q", ts.String())
	}
	ts.Default = "Hi there"
	if ts.String() != "Hi there" {
		t.Errorf("String() with default = %q", ts.String())
	}
}

func TestCatalogLocalizer(t *testing.T) {
	c := testCatalog(t)
	site := NewFactory("site")

	for _, tc := range []struct {
		name string
		tag  language.Tag
		ts   TranslationString
		want string
	}{
		{"Translated", language.German, site("Hello"), "Hallo"},
		{"Percent", language.German, site("Discount"), "100% Rabatt"},
		{"OtherDomain", language.German, NewFactory("other")("Hello"), "Servus"},
		{"Region", language.MustParse("pt-BR"), site("Hello"), "Olá"},
		{"ParentFallback", language.MustParse("de-AT"), site("Hello"), "Hallo"},
		{"MissingMessage", language.German, site("Goodbye 50%"), "Goodbye 50%"},
		{"MissingLocale", language.French, site("Hello"), "Hello"},
		{"UnknownDomain", language.German, NewFactory("nope")("Hello"), "Hello"},
		{"Default", language.French, TranslationString{MsgID: "greeting", Domain: "site", Default: "Hi"}, "Hi"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Localizer(tc.tag).Translate(tc.ts)
			if got != tc.want {
				t.Errorf("Translate(%+v) = %q, want %q", tc.ts, got, tc.want)
			}
		})
	}
}

func TestCatalogMatch(t *testing.T) {
	c := testCatalog(t)

	for _, tc := range []struct {
		prefs []string
		want  language.Tag
	}{
		{[]string{"de-DE,de;q=0.9,en;q=0.5"}, language.German},
		{[]string{"pt-BR"}, language.MustParse("pt-BR")},
		{[]string{"ja"}, language.English},
		{nil, language.English},
		{[]string{"not a tag!!"}, language.English},
	} {
		if got := c.Match(tc.prefs...); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.prefs, got, tc.want)
		}
	}

	if diff := cmp.Diff([]string{"de", "pt-BR"}, tagStrings(c.Languages())); diff != "" {
		t.Errorf("languages (-want +got):\n%s", diff)
	}
}

func tagStrings(tags []language.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

func TestEmptyCatalog(t *testing.T) {
	c, err := LoadDir(t.TempDir(), language.English)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Localizer(language.German) != Identity {
		t.Errorf("expected identity localizer for an empty catalog")
	}
	if got := c.Match("de"); got != language.English {
		t.Errorf("Match on empty catalog = %v", got)
	}

	var nilCatalog *Catalog
	if nilCatalog.Localizer(language.German) != Identity {
		t.Errorf("expected identity localizer for a nil catalog")
	}
	if got := Identity.Translate(NewFactory("x")("as is")); got != "as is" {
		t.Errorf("identity translate = %q", got)
	}
}

func TestLoadDirRejectsMismatchedLocale(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "de"), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "locale: fr\nmessages:\n  \"a\": \"b\"\n"
	if err := os.WriteFile(filepath.Join(dir, "de", "site.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir, language.English); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}
