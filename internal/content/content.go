package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"hcdigital.dev/web/internal/i18n"
)

//go:embed locales/*.yaml
var embedded embed.FS

// Icon identifiers the renderer has artwork for.
const (
	IconPenTool = "pen-tool"
	IconCode    = "code"
	IconMonitor = "monitor"
)

var knownIcons = map[string]struct{}{
	IconPenTool: {},
	IconCode:    {},
	IconMonitor: {},
}

// ErrIncomplete is wrapped by Load when a locale branch misses a field.
var ErrIncomplete = errors.New("content: incomplete locale branch")

// PageContent is every user-visible string for one locale.
type PageContent struct {
	Locale   string          `yaml:"locale"`
	Meta     MetaContent     `yaml:"meta"`
	Nav      NavContent      `yaml:"nav"`
	Hero     HeroContent     `yaml:"hero"`
	Services ServicesContent `yaml:"services"`
	Contact  ContactContent  `yaml:"contact"`
	Footer   FooterContent   `yaml:"footer"`
}

type MetaContent struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type NavContent struct {
	Home        string `yaml:"home"`
	Services    string `yaml:"services"`
	Contact     string `yaml:"contact"`
	CTA         string `yaml:"cta"`
	SwitchLabel string `yaml:"switch_label"`
	SwitchAria  string `yaml:"switch_aria"`
	MenuOpen    string `yaml:"menu_open"`
	MenuClose   string `yaml:"menu_close"`
}

type HeroContent struct {
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	BtnPrimary   string `yaml:"btn_primary"`
	BtnSecondary string `yaml:"btn_secondary"`
}

// ServiceCard describes one entry of the services grid.
type ServiceCard struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
	Icon  string `yaml:"icon"`
}

type ServicesContent struct {
	Title string        `yaml:"title"`
	Desc  string        `yaml:"desc"`
	Cards []ServiceCard `yaml:"cards"`
}

type FormContent struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Message      string `yaml:"message"`
	Submit       string `yaml:"submit"`
	Sending      string `yaml:"sending"`
	Success      string `yaml:"success"`
	Error        string `yaml:"error"`
	Required     string `yaml:"required"`
	InvalidEmail string `yaml:"invalid_email"`
}

type InfoContent struct {
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

// SocialLink is an outbound profile link shown under the contact details.
type SocialLink struct {
	Network string `yaml:"network"`
	Label   string `yaml:"label"`
	URL     string `yaml:"url"`
}

type ContactContent struct {
	Title    string       `yaml:"title"`
	Desc     string       `yaml:"desc"`
	Form     FormContent  `yaml:"form"`
	Info     InfoContent  `yaml:"info"`
	FollowUs string       `yaml:"follow_us"`
	Social   []SocialLink `yaml:"social"`
}

type FooterContent struct {
	Rights string `yaml:"rights"`
}

// Dictionary maps each supported locale to its content. It is never mutated after Load.
type Dictionary struct {
	branches map[i18n.Locale]PageContent
}

// Load decodes one YAML document per supported locale from fsys ("locales/<code>.yaml")
// and verifies every branch is complete.
func Load(fsys fs.FS) (*Dictionary, error) {
	d := &Dictionary{branches: map[i18n.Locale]PageContent{}}
	for _, l := range i18n.Supported() {
		file := path.Join("locales", l.String()+".yaml")
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("content: load locale %s: %w", l, err)
		}
		var pc PageContent
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&pc); err != nil {
			return nil, fmt.Errorf("content: unmarshal %s: %w", file, err)
		}
		if strings.TrimSpace(pc.Locale) != l.String() {
			return nil, fmt.Errorf("content: %s declares locale %q", file, pc.Locale)
		}
		if missing := missingFields(reflect.ValueOf(pc), ""); len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s missing %s", ErrIncomplete, l, strings.Join(missing, ", "))
		}
		for i, card := range pc.Services.Cards {
			if _, ok := knownIcons[card.Icon]; !ok {
				return nil, fmt.Errorf("content: %s services.cards[%d] unknown icon %q", l, i, card.Icon)
			}
		}
		d.branches[l] = pc
	}
	if err := d.checkParity(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadEmbedded loads the dictionary compiled into the binary.
func LoadEmbedded() (*Dictionary, error) {
	return Load(embedded)
}

// For returns a copy of the branch for l; unknown locales get the default branch.
func (d *Dictionary) For(l i18n.Locale) PageContent {
	pc, ok := d.branches[l]
	if !ok {
		pc = d.branches[i18n.Default]
	}
	return clonePageContent(pc)
}

// checkParity requires every locale to render the same service grid.
func (d *Dictionary) checkParity() error {
	base := d.branches[i18n.Default]
	for _, l := range i18n.Supported() {
		pc := d.branches[l]
		if len(pc.Services.Cards) != len(base.Services.Cards) {
			return fmt.Errorf("%w: %s has %d service cards, %s has %d", ErrIncomplete, l, len(pc.Services.Cards), i18n.Default, len(base.Services.Cards))
		}
		for i := range pc.Services.Cards {
			if pc.Services.Cards[i].Icon != base.Services.Cards[i].Icon {
				return fmt.Errorf("%w: %s services.cards[%d] icon %q differs from %s", ErrIncomplete, l, i, pc.Services.Cards[i].Icon, i18n.Default)
			}
		}
		if len(pc.Contact.Social) != len(base.Contact.Social) {
			return fmt.Errorf("%w: %s has %d social links, %s has %d", ErrIncomplete, l, len(pc.Contact.Social), i18n.Default, len(base.Contact.Social))
		}
	}
	return nil
}

// missingFields walks v and returns the yaml paths of empty strings and empty lists.
func missingFields(v reflect.Value, prefix string) []string {
	var out []string
	switch v.Kind() {
	case reflect.String:
		if strings.TrimSpace(v.String()) == "" {
			out = append(out, prefix)
		}
	case reflect.Slice:
		if v.Len() == 0 {
			out = append(out, prefix)
		}
		for i := 0; i < v.Len(); i++ {
			out = append(out, missingFields(v.Index(i), fmt.Sprintf("%s[%d]", prefix, i))...)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			name := strings.Split(t.Field(i).Tag.Get("yaml"), ",")[0]
			if name == "" {
				name = strings.ToLower(t.Field(i).Name)
			}
			if prefix != "" {
				name = prefix + "." + name
			}
			out = append(out, missingFields(v.Field(i), name)...)
		}
	}
	return out
}

func clonePageContent(src PageContent) PageContent {
	cp := src
	cp.Services.Cards = append([]ServiceCard(nil), src.Services.Cards...)
	cp.Contact.Social = append([]SocialLink(nil), src.Contact.Social...)
	return cp
}
