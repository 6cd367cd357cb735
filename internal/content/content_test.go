package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"hcdigital.dev/web/internal/i18n"
)

func TestEmbeddedDictionaryLoads(t *testing.T) {
	t.Parallel()

	d, err := LoadEmbedded()
	require.NoError(t, err)

	en := d.For(i18n.EN)
	require.Equal(t, "Enhance Your Digital Presence", en.Hero.Title)
	require.Equal(t, "View Services", en.Hero.BtnPrimary)

	ar := d.For(i18n.AR)
	require.Equal(t, "خبراتنا", ar.Services.Title)
	require.Len(t, ar.Services.Cards, 3)
	require.Equal(t, []string{IconPenTool, IconCode, IconMonitor}, icons(ar.Services.Cards))
	require.Equal(t, "تصميم واجهة المستخدم", ar.Services.Cards[0].Title)
}

func TestForReturnsCopy(t *testing.T) {
	t.Parallel()

	d, err := LoadEmbedded()
	require.NoError(t, err)
	first := d.For(i18n.EN)
	first.Services.Cards[0].Title = "mutated"
	first.Hero.Title = "mutated"

	again := d.For(i18n.EN)
	require.Equal(t, "UI/UX Design", again.Services.Cards[0].Title)
	require.Equal(t, "Enhance Your Digital Presence", again.Hero.Title)
}

func TestForUnknownLocaleUsesDefault(t *testing.T) {
	t.Parallel()

	d, err := LoadEmbedded()
	require.NoError(t, err)
	require.Equal(t, d.For(i18n.Default).Hero.Title, d.For(i18n.Locale("fr")).Hero.Title)
}

func TestLoadRejectsMissingField(t *testing.T) {
	t.Parallel()

	fsys := embeddedCopy(t)
	ar := string(fsys["locales/ar.yaml"].Data)
	ar = strings.Replace(ar, `  btn_primary: "تصفح خدماتنا"`+"\n", "", 1)
	fsys["locales/ar.yaml"].Data = []byte(ar)

	_, err := Load(fsys)
	require.ErrorIs(t, err, ErrIncomplete)
	require.Contains(t, err.Error(), "hero.btn_primary")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	fsys := embeddedCopy(t)
	fsys["locales/en.yaml"].Data = append(fsys["locales/en.yaml"].Data, []byte("extra: nope\n")...)

	_, err := Load(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unmarshal")
}

func TestLoadRejectsUnknownIcon(t *testing.T) {
	t.Parallel()

	fsys := embeddedCopy(t)
	for _, name := range []string{"locales/en.yaml", "locales/ar.yaml"} {
		fsys[name].Data = []byte(strings.Replace(string(fsys[name].Data), "icon: monitor", "icon: rocket", 1))
	}

	_, err := Load(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown icon "rocket"`)
}

func TestLoadRejectsCardCountMismatch(t *testing.T) {
	t.Parallel()

	fsys := embeddedCopy(t)
	ar := string(fsys["locales/ar.yaml"].Data)
	cut := strings.Index(ar, `    - title: "الهوية البصرية"`)
	end := strings.Index(ar, "contact:\n")
	require.True(t, cut > 0 && end > cut)
	fsys["locales/ar.yaml"].Data = []byte(ar[:cut] + ar[end:])

	_, err := Load(fsys)
	require.ErrorIs(t, err, ErrIncomplete)
	require.Contains(t, err.Error(), "service cards")
}

func TestLoadRequiresEveryLocale(t *testing.T) {
	t.Parallel()

	fsys := embeddedCopy(t)
	delete(fsys, "locales/ar.yaml")

	_, err := Load(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load locale ar")
}

func embeddedCopy(t *testing.T) fstest.MapFS {
	t.Helper()

	out := fstest.MapFS{}
	for _, l := range i18n.Supported() {
		name := "locales/" + l.String() + ".yaml"
		raw, err := embedded.ReadFile(name)
		require.NoError(t, err)
		out[name] = &fstest.MapFile{Data: append([]byte(nil), raw...)}
	}
	return out
}

func icons(cards []ServiceCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Icon)
	}
	return out
}
