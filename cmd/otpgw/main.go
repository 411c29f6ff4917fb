package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rendau/msg91/adapters/client/httpc"
	"github.com/rendau/msg91/adapters/client/httpc/httpclient"
	"github.com/rendau/msg91/adapters/logger/zap"
	"github.com/rendau/msg91/adapters/server/https"
	"github.com/rendau/msg91/adapters/sms/msg91"
	"github.com/rendau/msg91/internal/rest"
	"github.com/rendau/msg91/tools"
)

func main() {
	conf, err := loadConf()
	if err != nil {
		panic(err)
	}

	lg := zap.New(conf.LogLevel, conf.Debug)

	logFlags := 0
	if conf.Debug {
		logFlags = httpc.LogRequest | httpc.LogResponse
	}

	hc := httpclient.New(lg, httpc.OptionsSt{
		Client:        &http.Client{Timeout: conf.httpTimeout()},
		BaseLogPrefix: "httpc: ",
		LogFlags:      logFlags,
	})

	otp, err := msg91.New(lg, hc, msg91.OptionsSt{
		ApiKey:         conf.Msg91ApiKey,
		TemplateId:     conf.Msg91TemplateId,
		OtpExpiry:      conf.otpExpiry(),
		AndroidApkHash: conf.Msg91AndroidApkHash,
		BaseUrl:        conf.Msg91BaseUrl,
	})
	if err != nil {
		lg.Fatalw("Fail to create msg91 client", err)
	}

	server := https.Start(conf.HttpListen, rest.GetHandler(lg, otp, conf.HttpCors), lg)

	var exitCode int

	select {
	case <-tools.StopSignal():
	case <-server.Wait():
		exitCode = 1
	}

	lg.Infow("Shutting down...")

	if !server.Shutdown(20 * time.Second) {
		exitCode = 1
	}

	lg.Infow("Exit")

	lg.Sync()

	os.Exit(exitCode)
}
