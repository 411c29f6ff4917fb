package msg91

import (
	"time"
)

const (
	DefaultBaseUrl   = "https://api.msg91.com/api/v5/otp"
	DefaultOtpExpiry = 5 * time.Minute

	logPrefix = "msg91: "
)

// OptionsSt configures the client. The template must have the OTP, EXPIRY
// (minutes) and HASH (android apk hash) variables.
type OptionsSt struct {
	ApiKey         string        `json:"api_key"`
	TemplateId     string        `json:"template_id"`
	OtpExpiry      time.Duration `json:"otp_expiry" validate:"gte=0"`
	AndroidApkHash string        `json:"android_apk_hash"`
	BaseUrl        string        `json:"base_url" validate:"omitempty,url"`
}

// Otp length is counted in runes.
type otpReqSt struct {
	Phone string `json:"phone"`
	Otp   string `json:"otp" validate:"len=4"`
}

type retryReqSt struct {
	Phone     string `json:"phone"`
	RetryType string `json:"retry_type" validate:"oneof=text voice"`
}

type sendQuerySt struct {
	TemplateId string  `form:"template_id"`
	Mobile     string  `form:"mobile"`
	AuthKey    string  `form:"authkey"`
	Otp        string  `form:"otp"`
	OtpExpiry  float64 `form:"otp_expiry"`
	ExtraParam string  `form:"extra_param"`
}

type retryQuerySt struct {
	AuthKey   string `form:"authkey"`
	Mobile    string `form:"mobile"`
	RetryType string `form:"retrytype"`
}

type verifyQuerySt struct {
	Mobile    string  `form:"mobile"`
	AuthKey   string  `form:"authkey"`
	Otp       string  `form:"otp"`
	OtpExpiry float64 `form:"otp_expiry"`
}

// extraParamSt fills the template placeholders.
type extraParamSt struct {
	Otp    string  `json:"OTP"`
	Expiry float64 `json:"EXPIRY"`
	Hash   *string `json:"HASH"`
}
