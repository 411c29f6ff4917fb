package mock

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/rendau/msg91/adapters/logger"
	"github.com/rendau/msg91/adapters/sms"
	"github.com/rendau/msg91/errs"
)

var _ sms.Otp = &St{}

type St struct {
	lg      logger.Lite
	testing bool

	q     []Req
	codes map[string]string
	mu    sync.Mutex
}

type Req struct {
	Phone     string
	Otp       string
	RetryType sms.RetryType
}

func New(lg logger.Lite, testing bool) *St {
	return &St{
		lg:      lg,
		testing: testing,
		q:       make([]Req, 0),
		codes:   map[string]string{},
	}
}

func (m *St) SendOtpSms(ctx context.Context, phone, otp string) (string, error) {
	if utf8.RuneCountInString(otp) != 4 {
		return "", errs.InvalidArgument
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.testing {
		m.lg.Infow("Otp sms sent", "phone", phone, "otp", otp)
	}

	m.push(Req{Phone: phone, Otp: otp})
	m.codes[phone] = otp

	return "OTP sent", nil
}

func (m *St) RetryOtpSms(ctx context.Context, phone string, retryType sms.RetryType) (*sms.RepSt, error) {
	if retryType != sms.RetryTypeText && retryType != sms.RetryTypeVoice {
		return nil, errs.InvalidArgument
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	otp, ok := m.codes[phone]
	if !ok {
		return nil, errs.OtpRetryFailure
	}

	if !m.testing {
		m.lg.Infow("Otp sms resent", "phone", phone, "retry_type", retryType)
	}

	m.push(Req{Phone: phone, Otp: otp, RetryType: retryType})

	msg := "retry send successfully"

	return &sms.RepSt{
		Type:    sms.RepTypeSuccess,
		Message: msg,
		Raw:     map[string]any{"type": sms.RepTypeSuccess, "message": msg},
	}, nil
}

func (m *St) VerifyOtp(ctx context.Context, phone, otp string) (string, error) {
	if utf8.RuneCountInString(otp) != 4 {
		return "", errs.InvalidArgument
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if code, ok := m.codes[phone]; !ok || code != otp {
		return "", errs.OtpVerificationFailure
	}

	delete(m.codes, phone)

	return "OTP verified success", nil
}

func (m *St) push(req Req) {
	if len(m.q) > 100 {
		m.q = make([]Req, 0)
	}

	m.q = append(m.q, req)
}

func (m *St) PullAll() []Req {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := m.q

	m.q = make([]Req, 0)

	return q
}

// PullCode returns the otp of the first queued request and empties the queue.
func (m *St) PullCode() string {
	reqs := m.PullAll()
	if len(reqs) < 1 {
		return ""
	}

	return reqs[0].Otp
}

func (m *St) Clean() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.q = make([]Req, 0)
	m.codes = map[string]string{}
}
