package sms

import (
	"encoding/json"
)

type RetryType string

const (
	RetryTypeText  RetryType = "text"
	RetryTypeVoice RetryType = "voice"
)

const RepTypeSuccess = "success"

// RepSt is a provider reply. Raw keeps the whole decoded body, the shape of
// which is owned by the provider.
type RepSt struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Raw     map[string]any `json:"-"`
}

func (r *RepSt) UnmarshalJSON(data []byte) error {
	type plain RepSt

	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = RepSt(v)
	r.Raw = raw

	return nil
}

func (r *RepSt) IsSuccess() bool {
	return r != nil && r.Type == RepTypeSuccess
}
