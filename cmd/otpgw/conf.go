package main

import (
	"time"

	"github.com/rendau/msg91/tools"
	"github.com/spf13/viper"
)

type confSt struct {
	Debug          bool   `mapstructure:"DEBUG"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	HttpListen     string `mapstructure:"HTTP_LISTEN"`
	HttpCors       bool   `mapstructure:"HTTP_CORS"`
	HttpTimeoutSec int64  `mapstructure:"HTTP_TIMEOUT_SEC"`

	Msg91ApiKey         string `mapstructure:"MSG91_API_KEY"`
	Msg91TemplateId     string `mapstructure:"MSG91_TEMPLATE_ID"`
	Msg91OtpExpirySec   int64  `mapstructure:"MSG91_OTP_EXPIRY_SEC"`
	Msg91AndroidApkHash string `mapstructure:"MSG91_ANDROID_APK_HASH"`
	Msg91BaseUrl        string `mapstructure:"MSG91_BASE_URL"`
}

var defaultConf = confSt{
	LogLevel:          "info",
	HttpListen:        ":80",
	HttpCors:          true,
	Msg91OtpExpirySec: 300,
}

// loadConf reads conf.yml from the working directory if present, environment wins.
func loadConf() (*confSt, error) {
	viper.SetConfigFile("conf.yml")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	tools.SetViperDefaultsFromObj(defaultConf)

	conf := &confSt{}

	err := viper.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *confSt) httpTimeout() time.Duration {
	return time.Duration(c.HttpTimeoutSec) * time.Second
}

func (c *confSt) otpExpiry() time.Duration {
	return time.Duration(c.Msg91OtpExpirySec) * time.Second
}
