package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Chikimuras/ezlife/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves Accept-Language against the loaded translations.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := translator.LanguageEn
		if header := c.GetHeader("Accept-Language"); header != "" {
			lang = translator.MatchLanguage(header)
		}
		c.Set(langKey, lang)
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
