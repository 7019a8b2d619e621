// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated UI strings for Aerocode.
// It uses the go-i18n library to load the embedded locale files. Brazilian
// Portuguese is the default language; English is also shipped.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is used when no language is configured.
const DefaultLang = "pt-BR"

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle      *i18n.Bundle
	localizer   *i18n.Localizer
	currentLang string
	locales     []string
)

// Init loads every embedded locale and selects lang.
func Init(lang string) {
	if lang == "" {
		lang = DefaultLang
	}
	bundle = i18n.NewBundle(language.BrazilianPortuguese)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	locales = locales[:0]
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		locales = append(locales, strings.TrimSuffix(f.Name(), path.Ext(f.Name())))
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	currentLang = lang
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language tag.
func GetLang() string {
	if localizer == nil {
		Init(DefaultLang)
	}
	return currentLang
}

// T translates messageID. A single map[string]any argument is used as
// template data; any other arguments are applied fmt-style to the result.
// Unknown ids are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init(DefaultLang)
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// GetAvailableLocales maps every embedded language tag to its display name.
func GetAvailableLocales() map[string]string {
	if localizer == nil {
		Init(DefaultLang)
	}
	out := make(map[string]string, len(locales))
	for _, tag := range locales {
		l := i18n.NewLocalizer(bundle, tag)
		name, err := l.Localize(&i18n.LocalizeConfig{MessageID: "language.name"})
		if err != nil {
			name = tag
		}
		out[tag] = name
	}
	return out
}
