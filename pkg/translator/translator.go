package translator

import (
	"fmt"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // Files for other languages are skipped
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || !isSupported(f.Name(), cfg.SupportedLanguages) {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		if _, err := Translator.LoadMessageFile(filepath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Localize translates msgKey for lang, falling back to English and then to the key itself.
func Localize(msgKey string, lang string, data map[string]any) string {
	if Translator == nil {
		return msgKey
	}

	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		// go-i18n returns the default-language text alongside MessageNotFoundErr.
		if msg == "" {
			return msgKey
		}
	}
	return msg
}

// isSupported matches "en.toml" or "active.en.toml" style names against the language list.
// An empty list accepts every file.
func isSupported(fileName string, languages []string) bool {
	if len(languages) == 0 {
		return true
	}
	parts := strings.Split(fileName, ".")
	if len(parts) < 2 {
		return false
	}
	tag := parts[len(parts)-2]
	for _, lang := range languages {
		if strings.EqualFold(tag, lang) {
			return true
		}
	}
	return false
}
