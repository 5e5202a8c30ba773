package middleware

import (
	"taskhub/pkg/apierrors"
	"taskhub/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware stores the Accept-Language header for error
// translation, defaulting to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set(apierrors.LangKey, lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang := c.GetString(apierrors.LangKey); lang != "" {
		return lang
	}
	return translator.LanguageEn
}
