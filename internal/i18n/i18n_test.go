package i18n

import "testing"

func TestResolveHonorsQValues(t *testing.T) {
    got := Resolve("en;q=0.8, ar;q=0.9")
    if got != AR {
        t.Fatalf("expected ar, got %s", got)
    }
}

func TestResolveFallsBackToDefault(t *testing.T) {
    for _, header := range []string{"", "ja, fr;q=0.8", "%%%"} {
        if got := Resolve(header); got != Default {
            t.Fatalf("Resolve(%q): expected %s, got %s", header, Default, got)
        }
    }
}

func TestResolveRegionalVariant(t *testing.T) {
    if got := Resolve("ar-DZ,ar;q=0.9,fr;q=0.8"); got != AR {
        t.Fatalf("expected ar for ar-DZ, got %s", got)
    }
}

func TestToggleTwiceRestoresLocaleAndDirection(t *testing.T) {
    for _, l := range Supported() {
        once := l.Toggle()
        if once == l {
            t.Fatalf("toggle of %s did not change locale", l)
        }
        twice := once.Toggle()
        if twice != l || twice.Dir() != l.Dir() {
            t.Fatalf("toggle twice from %s gave %s (%s)", l, twice, twice.Dir())
        }
    }
}

func TestDirIsRTLOnlyForArabic(t *testing.T) {
    if AR.Dir() != DirRTL {
        t.Fatalf("ar should be rtl")
    }
    if EN.Dir() != DirLTR {
        t.Fatalf("en should be ltr")
    }
}

func TestParse(t *testing.T) {
    cases := map[string]Locale{"ar": AR, "AR": AR, "ar-DZ": AR, "en": EN, "en-GB": EN}
    for in, want := range cases {
        got, ok := Parse(in)
        if !ok || got != want {
            t.Fatalf("Parse(%q) = %q,%v; want %q", in, got, ok, want)
        }
    }
    for _, in := range []string{"", "fr", "not a tag"} {
        if _, ok := Parse(in); ok {
            t.Fatalf("Parse(%q) should fail", in)
        }
    }
}
