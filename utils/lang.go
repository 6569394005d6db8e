package utils

import (
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	return b
}

// InitI18NBundle loads the message files under `i18n.dir`. English texts are
// compiled in, so a missing directory only disables translations.
func InitI18NBundle() {
	bundle = newBundle()

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		return
	}

	for _, file := range []string{"en.yaml", "zh_tw.yaml"} {
		p := path.Join(dir, file)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		bundle.MustLoadMessageFile(p)
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		bundle = newBundle()
	}
	return i18n.NewLocalizer(bundle, lang)
}

// Localize renders msg in lang, falling back to its English text
func Localize(lang string, msg *i18n.Message, data map[string]interface{}) string {
	text, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return text
}
