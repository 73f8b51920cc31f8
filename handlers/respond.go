package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-proof-service/core"
)

var kindStatus = map[core.Kind]int{
	core.KindInvalidArgument:   http.StatusBadRequest,
	core.KindNotFound:          http.StatusNotFound,
	core.KindConflict:          http.StatusConflict,
	core.KindInvalidTransition: http.StatusConflict,
	core.KindInvalidState:      http.StatusConflict,
	core.KindImmutableEntity:   http.StatusConflict,
	core.KindExpired:           http.StatusGone,
	core.KindUploadFailed:      http.StatusBadGateway,
}

// respondError maps a domain error to its HTTP status and serializes the
// structured details. Anything outside the taxonomy is a plain 500 with no
// internals leaked.
func respondError(c *gin.Context, err error) {
	var domainErr *core.Error
	if !errors.As(err, &domainErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status, ok := kindStatus[domainErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := gin.H{
		"error": domainErr.Message,
		"kind":  string(domainErr.Kind),
	}
	if len(domainErr.Details) > 0 {
		body["details"] = domainErr.Details
	}
	c.JSON(status, body)
}
