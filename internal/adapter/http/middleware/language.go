package middleware

import (
	"todoboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.French})

// LanguageMiddleware resolves the Accept-Language header to one of the supported languages.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func resolveLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tag, _ := language.MatchStrings(languageMatcher, header)
	base, _ := tag.Base()
	if base.String() == translator.LanguageFr {
		return translator.LanguageFr
	}
	return translator.LanguageEn
}
