package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rendau/msg91/adapters/server/https"
	"github.com/rendau/msg91/adapters/sms"
)

type otpReqSt struct {
	Phone string `json:"phone" binding:"required"`
	Otp   string `json:"otp" binding:"required"`
}

type otpRetryReqSt struct {
	Phone     string        `json:"phone" binding:"required"`
	RetryType sms.RetryType `json:"retry_type" binding:"required"`
}

type messageRepSt struct {
	Message string `json:"message"`
}

func (o *St) hOtpSend(c *gin.Context) {
	reqObj := &otpReqSt{}
	if !https.BindJSON(c, reqObj) {
		return
	}

	msg, err := o.otp.SendOtpSms(c.Request.Context(), reqObj.Phone, reqObj.Otp)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, messageRepSt{Message: msg})
}

func (o *St) hOtpRetry(c *gin.Context) {
	reqObj := &otpRetryReqSt{}
	if !https.BindJSON(c, reqObj) {
		return
	}

	rep, err := o.otp.RetryOtpSms(c.Request.Context(), reqObj.Phone, reqObj.RetryType)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, rep.Raw)
}

func (o *St) hOtpVerify(c *gin.Context) {
	reqObj := &otpReqSt{}
	if !https.BindJSON(c, reqObj) {
		return
	}

	msg, err := o.otp.VerifyOtp(c.Request.Context(), reqObj.Phone, reqObj.Otp)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, messageRepSt{Message: msg})
}
