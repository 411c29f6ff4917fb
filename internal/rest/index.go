package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rendau/msg91/adapters/logger"
	"github.com/rendau/msg91/adapters/server/https"
	"github.com/rendau/msg91/adapters/sms"
)

type St struct {
	lg  logger.Lite
	otp sms.Otp
}

func GetHandler(lg logger.Lite, otp sms.Otp, withCors bool) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(https.MwRecovery(lg))

	s := &St{
		lg:  lg,
		otp: otp,
	}

	r.GET("/healthcheck", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.POST("/otp/send", s.hOtpSend)
	r.POST("/otp/retry", s.hOtpRetry)
	r.POST("/otp/verify", s.hOtpVerify)

	if withCors {
		return https.MwCors(r)
	}

	return r
}
