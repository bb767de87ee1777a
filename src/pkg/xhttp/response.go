package xhttp

import (
	"net/http"

	"NFTMarketLedger/src/errcode"

	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope of the API.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Data: data,
	})
}

// Error renders a coded error. Uncoded errors are masked as ErrUnexpected so
// internals never leak to clients.
func Error(c *gin.Context, err error) {
	ce, ok := errcode.AsErr(err)
	if !ok {
		ce = errcode.ErrUnexpected
	}
	c.JSON(http.StatusOK, Response{
		Code: ce.Code(),
		Msg:  ce.Error(),
	})
}
