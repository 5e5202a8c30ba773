package apierrors

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"taskhub/pkg/translator"
)

// LangKey is the gin context key holding the request language.
const LangKey = "lang"

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang)
}

// Abort writes a translated error for the request language and stops the
// handler chain.
func Abort(c *gin.Context, code int, msgKey string) {
	lang := c.GetString(LangKey)
	if lang == "" {
		lang = translator.LanguageEn
	}
	c.AbortWithStatusJSON(code, CreateError(code, msgKey, lang))
}
