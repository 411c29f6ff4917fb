package errs

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ErrWithDesc

type ErrWithDesc struct {
	Err  Err
	Desc string
}

func (e ErrWithDesc) Error() string {
	return e.Err.Error() + ", desc:" + e.Desc
}

func (e ErrWithDesc) Unwrap() error {
	return e.Err
}

// errors

const (
	InvalidArgument        = Err("invalid_argument")
	OtpSendFailure         = Err("otp_send_failure")
	OtpRetryFailure        = Err("otp_retry_failure")
	OtpVerificationFailure = Err("otp_verification_failure")
	ProviderRejected       = Err("provider_rejected")

	BadJson       = Err("bad_json")
	ServiceNA     = Err("service_not_available")
	NotAuthorized = Err("not_authorized")
	BadStatusCode = Err("bad_status_code")
)
