package httpc

import (
	"net/http"
	"net/url"
	"strings"
)

type OptionsSt struct {
	Client        *http.Client
	BaseUrl       string
	BaseParams    url.Values
	BaseHeaders   http.Header
	BaseLogPrefix string

	Method    string
	Path      string
	Params    url.Values
	Headers   http.Header
	LogFlags  int
	LogPrefix string
}

func (o OptionsSt) GetMergedWith(v OptionsSt) OptionsSt {
	res := o

	if v.Client != nil {
		res.Client = v.Client
	}
	if v.BaseUrl != "" {
		if v.BaseUrl == "-" {
			res.BaseUrl = ""
		} else {
			res.BaseUrl = v.BaseUrl
		}
	}
	if v.BaseParams != nil {
		res.BaseParams = v.BaseParams
	}
	if v.BaseHeaders != nil {
		res.BaseHeaders = v.BaseHeaders
	}
	if v.BaseLogPrefix != "" {
		if v.BaseLogPrefix == "-" {
			res.BaseLogPrefix = ""
		} else {
			res.BaseLogPrefix = v.BaseLogPrefix
		}
	}
	if v.Method != "" {
		if v.Method == "-" {
			res.Method = ""
		} else {
			res.Method = v.Method
		}
	}
	if v.Path != "" {
		if v.Path == "-" {
			res.Path = ""
		} else {
			res.Path = v.Path
		}
	}
	if v.Params != nil {
		res.Params = v.Params
	}
	if v.Headers != nil {
		res.Headers = v.Headers
	}
	if v.LogFlags != 0 {
		if v.LogFlags < 0 {
			res.LogFlags = 0
		} else {
			res.LogFlags = v.LogFlags
		}
	}
	if v.LogPrefix != "" {
		if v.LogPrefix == "-" {
			res.LogPrefix = ""
		} else {
			res.LogPrefix = v.LogPrefix
		}
	}

	return res
}

// Uri joins BaseUrl and Path with exactly one slash between them.
func (o OptionsSt) Uri() string {
	return strings.TrimRight(o.BaseUrl, "/") + "/" + strings.TrimLeft(o.Path, "/")
}

// Query merges BaseParams and Params, Params winning on key clash.
func (o OptionsSt) Query() url.Values {
	qPars := url.Values{}
	for k, v := range o.BaseParams {
		qPars[k] = v
	}
	for k, v := range o.Params {
		qPars[k] = v
	}
	return qPars
}
