package msg91

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rendau/msg91/adapters/client/httpc"
	"github.com/rendau/msg91/adapters/logger"
	"github.com/rendau/msg91/adapters/sms"
	"github.com/rendau/msg91/errs"
	"github.com/rendau/msg91/tools"
)

var _ sms.Otp = &St{}

type St struct {
	lg       logger.Lite
	httpc    httpc.HttpC
	validate *validator.Validate

	apiKey         string
	templateId     string
	otpExpiryMin   float64
	androidApkHash *string
	baseUrl        string
}

func New(lg logger.Lite, httpc httpc.HttpC, opts OptionsSt) (*St, error) {
	v := newValidator()

	if err := validateStruct(v, opts); err != nil {
		return nil, err
	}

	if opts.OtpExpiry == 0 {
		opts.OtpExpiry = DefaultOtpExpiry
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}

	res := &St{
		lg:       lg,
		httpc:    httpc,
		validate: v,

		apiKey:       opts.ApiKey,
		templateId:   opts.TemplateId,
		otpExpiryMin: float64(opts.OtpExpiry) / float64(time.Minute),
		baseUrl:      strings.TrimRight(opts.BaseUrl, "/"),
	}

	if opts.AndroidApkHash != "" {
		res.androidApkHash = tools.NewPtr(opts.AndroidApkHash)
	}

	return res, nil
}

func (c *St) SendOtpSms(ctx context.Context, phone, otp string) (string, error) {
	err := validateStruct(c.validate, otpReqSt{Phone: phone, Otp: otp})
	if err != nil {
		return "", err
	}

	extraParam, err := encodeExtraParam(extraParamSt{
		Otp:    otp,
		Expiry: c.otpExpiryMin,
		Hash:   c.androidApkHash,
	})
	if err != nil {
		return "", err
	}

	rep, repBody, err := c.call(ctx, "", sendQuerySt{
		TemplateId: c.templateId,
		Mobile:     phone,
		AuthKey:    c.apiKey,
		Otp:        otp,
		OtpExpiry:  c.otpExpiryMin,
		ExtraParam: extraParam,
	})
	if err != nil {
		c.lg.Errorw(
			logPrefix+"sendOtpSms: error", err,
			"mobile", phone,
			"otp", otp,
			"response", string(repBody),
		)
		return "", fmt.Errorf("%w: %w", errs.OtpSendFailure, err)
	}

	return rep.Message, nil
}

func (c *St) RetryOtpSms(ctx context.Context, phone string, retryType sms.RetryType) (*sms.RepSt, error) {
	err := validateStruct(c.validate, retryReqSt{Phone: phone, RetryType: string(retryType)})
	if err != nil {
		return nil, err
	}

	rep, repBody, err := c.call(ctx, "retry", retryQuerySt{
		AuthKey:   c.apiKey,
		Mobile:    phone,
		RetryType: string(retryType),
	})
	if err != nil {
		c.lg.Errorw(
			logPrefix+"retryOtpSms: error", err,
			"mobile", phone,
			"response", string(repBody),
		)
		return nil, fmt.Errorf("%w: %w", errs.OtpRetryFailure, err)
	}

	return rep, nil
}

func (c *St) VerifyOtp(ctx context.Context, phone, otp string) (string, error) {
	err := validateStruct(c.validate, otpReqSt{Phone: phone, Otp: otp})
	if err != nil {
		return "", err
	}

	rep, repBody, err := c.call(ctx, "verify", verifyQuerySt{
		Mobile:    phone,
		AuthKey:   c.apiKey,
		Otp:       otp,
		OtpExpiry: c.otpExpiryMin,
	})
	if err != nil {
		c.lg.Errorw(
			logPrefix+"verifyOtp: error", err,
			"mobile", phone,
			"otp", otp,
			"response", string(repBody),
		)
		return "", fmt.Errorf("%w: %w", errs.OtpVerificationFailure, err)
	}

	return rep.Message, nil
}

// call does one GET and succeeds only on a 2xx reply whose type is "success".
// The raw body is returned in every case it was received.
func (c *St) call(ctx context.Context, path string, query any) (*sms.RepSt, []byte, error) {
	rep := &sms.RepSt{}

	repBody, _, err := c.httpc.SendRecvJson(ctx, nil, rep, httpc.OptionsSt{
		BaseUrl:  c.baseUrl,
		Method:   http.MethodGet,
		Path:     path,
		Params:   httpc.Object2UrlValues(query),
		LogFlags: httpc.NoLogError,
	})
	if err != nil {
		return nil, repBody, err
	}

	if !rep.IsSuccess() {
		return nil, repBody, errs.ErrWithDesc{Err: errs.ProviderRejected, Desc: rep.Message}
	}

	return rep, repBody, nil
}

// encodeExtraParam leaves <, > and & unescaped.
func encodeExtraParam(v extraParamSt) (string, error) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func validateStruct(v *validator.Validate, obj any) error {
	err := v.Struct(obj)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return errs.ErrWithDesc{Err: errs.InvalidArgument, Desc: err.Error()}
	}

	descs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		if fe.Param() != "" {
			descs = append(descs, fe.Field()+" must satisfy "+fe.Tag()+"="+fe.Param())
		} else {
			descs = append(descs, fe.Field()+" is "+fe.Tag())
		}
	}

	return errs.ErrWithDesc{Err: errs.InvalidArgument, Desc: strings.Join(descs, "; ")}
}
