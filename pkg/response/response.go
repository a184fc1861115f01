package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "finmail-classifier/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends err with the status of the *errors.HTTPError in its chain and that
// error's message. Errors without one are sent as 500 with DefaultErrorMessage.
func Error(c *gin.Context, err error) {
	msg := DefaultErrorMessage
	var he *pkgErrors.HTTPError
	if stderrors.As(err, &he) && he.Message != "" {
		msg = he.Message
	}
	c.JSON(pkgErrors.StatusCode(err), ErrorResp{Detail: msg})
}

// BadRequest sends 400 with err's message as detail.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResp{Detail: err.Error()})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Detail: DefaultErrorMessage})
}

// TooManyRequests sends 429 with the given detail.
func TooManyRequests(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Detail: detail})
}

// NotFound sends 404.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResp{Detail: "Not Found"})
}
