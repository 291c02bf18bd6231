package common

import (
	"net/http"

	"github.com/AuraHubTeam/AuraHub/internal/errs"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Resp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrResp is the stable error body every failure is reduced to, no matter
// which handler produced it.
type ErrResp struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func SuccessResp(c *gin.Context, data ...interface{}) {
	if len(data) == 0 {
		c.JSON(http.StatusOK, Resp{
			Code:    http.StatusOK,
			Message: "success",
			Data:    nil,
		})
		return
	}
	c.JSON(http.StatusOK, Resp{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data[0],
	})
}

// ErrorResp maps an error onto its kind and HTTP status. Raw upstream bodies
// are never echoed; only the typed message travels to the caller.
func ErrorResp(c *gin.Context, err error) {
	kind := errs.Kind(err)
	status := errs.HTTPStatus(err)
	message := err.Error()
	if kind == errs.KindMalformedResponse {
		message = errs.MalformedResponse.Error()
	}
	if status >= http.StatusInternalServerError {
		log.Warnf("request %s failed: %s: %v", c.Request.URL.Path, kind, err)
	}
	c.JSON(status, ErrResp{
		Kind:    kind,
		Message: message,
	})
	c.Abort()
}

// ErrorStrResp reports a field-level validation failure without an
// underlying error value.
func ErrorStrResp(c *gin.Context, field, reason string) {
	ErrorResp(c, errs.NewValidation(field, reason))
}
