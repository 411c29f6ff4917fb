package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rendau/msg91/adapters/client/httpc"
	"github.com/rendau/msg91/adapters/logger"
	"github.com/rendau/msg91/errs"
)

var _ httpc.HttpC = &St{}

type St struct {
	lg   logger.Lite
	opts httpc.OptionsSt
}

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}

	return &St{
		lg:   lg,
		opts: opts,
	}
}

// Send performs exactly one request. On a non-2xx status the body and status
// code are returned together with errs.BadStatusCode or errs.NotAuthorized.
func (c *St) Send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, int, error) {
	opts = c.opts.GetMergedWith(opts)

	if opts.Method == "" {
		opts.Method = http.MethodGet
	}

	uri := opts.Uri()
	logPrefix := opts.BaseLogPrefix + opts.LogPrefix
	logError := opts.LogFlags&httpc.NoLogError <= 0

	var bodyReader io.Reader
	if len(reqBody) > 0 {
		bodyReader = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, uri, bodyReader)
	if err != nil {
		if logError {
			c.lg.Errorw(logPrefix+"Fail to create http-request", err, "uri", uri)
		}
		return nil, 0, err
	}

	// Headers
	for k, v := range opts.BaseHeaders {
		req.Header[k] = v
	}
	for k, v := range opts.Headers {
		req.Header[k] = v
	}

	// Query params
	queryParamsString := opts.Query().Encode()
	req.URL.RawQuery = queryParamsString

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(logPrefix+"request: /"+opts.Path,
			"uri", uri,
			"params", queryParamsString,
			"body", string(reqBody),
		)
	}

	rep, err := opts.Client.Do(req)
	if err != nil {
		if logError {
			c.lg.Errorw(
				logPrefix+"Fail to send http-request", err,
				"uri", uri,
				"params", queryParamsString,
				"req_body", string(reqBody),
			)
		}
		return nil, 0, err
	}
	defer rep.Body.Close()

	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		if logError {
			c.lg.Errorw(
				logPrefix+"Fail to read body", err,
				"uri", uri,
				"params", queryParamsString,
			)
		}
		return nil, rep.StatusCode, err
	}

	if rep.StatusCode < 200 || rep.StatusCode > 299 {
		err = errs.BadStatusCode
		if rep.StatusCode == http.StatusUnauthorized || rep.StatusCode == http.StatusForbidden {
			err = errs.NotAuthorized
			if opts.LogFlags&httpc.NoLogNotAuthorized > 0 {
				logError = false
			}
		}

		if logError && opts.LogFlags&httpc.NoLogBadStatus <= 0 {
			c.lg.Errorw(
				logPrefix+"Bad status code", err,
				"status_code", rep.StatusCode,
				"rep_body", string(repBody),
				"uri", uri,
				"params", queryParamsString,
			)
		}

		return repBody, rep.StatusCode, err
	}

	if opts.LogFlags&httpc.LogResponse > 0 {
		c.lg.Infow(logPrefix+"response: /"+opts.Path,
			"uri", uri,
			"status_code", rep.StatusCode,
			"body", string(repBody),
		)
	}

	return repBody, rep.StatusCode, nil
}

// SendRecvJson is Send plus decoding of a non-empty body into repObj.
// The raw body is returned even when decoding fails.
func (c *St) SendRecvJson(ctx context.Context, reqBody []byte, repObj any, opts httpc.OptionsSt) ([]byte, int, error) {
	if opts.Headers == nil {
		opts.Headers = http.Header{}
	}

	opts.Headers["Accept"] = []string{"application/json"}

	repBody, statusCode, err := c.Send(ctx, reqBody, opts)
	if err != nil {
		return repBody, statusCode, err
	}

	if len(repBody) > 0 && repObj != nil {
		err = json.Unmarshal(repBody, repObj)
		if err != nil {
			mOpts := c.opts.GetMergedWith(opts)
			if mOpts.LogFlags&httpc.NoLogError <= 0 {
				c.lg.Errorw(
					mOpts.BaseLogPrefix+mOpts.LogPrefix+"Fail to unmarshal body", err,
					"path", opts.Path,
					"rep_body", string(repBody),
				)
			}
			return repBody, statusCode, errs.ErrWithDesc{Err: errs.BadJson, Desc: err.Error()}
		}
	}

	return repBody, statusCode, nil
}
