package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"taskboard/pkg/translator"
)

const langKey = "lang"

var supportedLanguages = language.NewMatcher([]language.Tag{language.English, language.French})

// LanguageMiddleware picks the response language from the Accept-Language header, defaulting to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func matchLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	tag, _, _ := supportedLanguages.Match(tags...)
	base, _ := tag.Base()
	if base.String() == translator.LanguageFr {
		return translator.LanguageFr
	}
	return translator.LanguageEn
}
