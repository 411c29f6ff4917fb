package sms

import (
	"context"
)

// Otp sends, resends and verifies one-time passwords through an SMS provider.
type Otp interface {
	SendOtpSms(ctx context.Context, phone, otp string) (string, error)
	RetryOtpSms(ctx context.Context, phone string, retryType RetryType) (*RepSt, error)
	VerifyOtp(ctx context.Context, phone, otp string) (string, error)
}
