package httpc

import (
	"net/url"
	"reflect"
	"strconv"
	"testing"
)

func TestObject2UrlValues(t *testing.T) {
	type embStruct struct {
		EF1 int `form:"ef1"`
	}

	hash := "abc"

	tests := []struct {
		obj  any
		want url.Values
	}{
		{
			obj: struct {
				embStruct
				TemplateId string   `form:"template_id"`
				Mobile     string   `form:"mobile"`
				Expiry     float64  `form:"otp_expiry"`
				Hash       *string  `form:"hash"`
				NoHash     *string  `form:"no_hash"`
				Types      []string `form:"types"`
				Skipped    string   `form:"-"`
				Untagged   string
			}{
				embStruct:  embStruct{EF1: 77},
				TemplateId: "tpl",
				Mobile:     "+919999999999",
				Expiry:     5,
				Hash:       &hash,
				Types:      []string{"text", "voice"},
				Skipped:    "x",
				Untagged:   "y",
			},
			want: url.Values{
				"ef1":         {"77"},
				"template_id": {"tpl"},
				"mobile":      {"+919999999999"},
				"otp_expiry":  {"5"},
				"hash":        {"abc"},
				"types":       {"text", "voice"},
			},
		},
		{
			obj: &struct {
				Expiry  float64 `form:"otp_expiry"`
				Big     float64 `form:"big"`
				Empty   string  `form:"empty,omitempty"`
				Zero    int     `form:"zero"`
				Present string  `form:"present,omitempty"`
			}{
				Expiry:  1.5,
				Big:     1000000,
				Present: "p",
			},
			want: url.Values{
				"otp_expiry": {"1.5"},
				"big":        {"1000000"},
				"zero":       {"0"},
				"present":    {"p"},
			},
		},
	}
	for ttI, tt := range tests {
		t.Run(strconv.Itoa(ttI+1), func(t *testing.T) {
			if got := Object2UrlValues(tt.obj); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Object2UrlValues() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptionsSt_GetMergedWith(t *testing.T) {
	base := OptionsSt{
		BaseUrl:   "https://api.example.com/v5/otp",
		Method:    "GET",
		LogFlags:  LogRequest,
		LogPrefix: "base: ",
	}

	got := base.GetMergedWith(OptionsSt{
		Path:      "verify",
		LogFlags:  NoLogError,
		LogPrefix: "-",
		Params:    url.Values{"otp": {"1234"}},
	})

	if got.BaseUrl != base.BaseUrl {
		t.Errorf("BaseUrl = %q", got.BaseUrl)
	}
	if got.Path != "verify" {
		t.Errorf("Path = %q", got.Path)
	}
	if got.LogFlags != NoLogError {
		t.Errorf("LogFlags = %d", got.LogFlags)
	}
	if got.LogPrefix != "" {
		t.Errorf("LogPrefix = %q, want empty", got.LogPrefix)
	}
	if got.Params.Get("otp") != "1234" {
		t.Errorf("Params = %v", got.Params)
	}
	if got.Uri() != "https://api.example.com/v5/otp/verify" {
		t.Errorf("Uri() = %q", got.Uri())
	}
}

func TestOptionsSt_Uri(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "https://api.msg91.com/api/v5/otp", path: "", want: "https://api.msg91.com/api/v5/otp/"},
		{base: "https://api.msg91.com/api/v5/otp/", path: "retry", want: "https://api.msg91.com/api/v5/otp/retry"},
		{base: "http://127.0.0.1:8080", path: "/verify", want: "http://127.0.0.1:8080/verify"},
	}
	for ttI, tt := range tests {
		t.Run(strconv.Itoa(ttI+1), func(t *testing.T) {
			if got := (OptionsSt{BaseUrl: tt.base, Path: tt.path}).Uri(); got != tt.want {
				t.Errorf("Uri() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionsSt_Query(t *testing.T) {
	got := OptionsSt{
		BaseParams: url.Values{"authkey": {"k"}, "mobile": {"1"}},
		Params:     url.Values{"mobile": {"2"}},
	}.Query()

	want := url.Values{"authkey": {"k"}, "mobile": {"2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Query() = %v, want %v", got, want)
	}
}
