package api

import (
	"github.com/gin-gonic/gin"

	"github.com/xolan/worklog/internal/logger"
	"github.com/xolan/worklog/internal/service"
)

func HandleError(c *gin.Context, log logger.Logger, err error, action string) {
	requestID := c.GetString(requestIDKey)
	kind := service.KindOf(err)
	status := StatusFor(kind)
	if status >= 500 {
		log.Errorf("[request_id=%s] %s: %v", requestID, action, err)
	} else {
		log.Infof("[request_id=%s] %s rejected (%s): %v", requestID, action, kind, err)
	}
	c.JSON(status, Failure(err))
}

func HandleSuccess(c *gin.Context, log logger.Logger, body interface{}) {
	log.Debugf("[request_id=%s] success", c.GetString(requestIDKey))
	c.JSON(200, body)
}
