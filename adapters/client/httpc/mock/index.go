package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rendau/msg91/adapters/client/httpc"
	"github.com/rendau/msg91/adapters/logger"
	"github.com/rendau/msg91/errs"
)

const (
	ErrPageNotFound = errs.Err("page_not_found")
)

var _ httpc.HttpC = &St{}

type St struct {
	lg logger.Lite

	requests  []*RequestSt
	responses map[string]ResponseSt
	mu        sync.Mutex
}

type RequestSt struct {
	Opts httpc.OptionsSt
	Raw  []byte
}

// ResponseSt is served for a path. Obj is marshalled when Raw is empty,
// StatusCode defaults to 200, a non-nil Err simulates a transport failure.
type ResponseSt struct {
	Obj        any
	Raw        []byte
	StatusCode int
	Err        error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []*RequestSt{},
		responses: map[string]ResponseSt{},
	}
}

func (c *St) SetResponses(responses map[string]ResponseSt) {
	c.mu.Lock()
	c.responses = map[string]ResponseSt{}
	c.mu.Unlock()

	for k, v := range responses {
		c.SetResponse(k, v)
	}
}

func (c *St) SetResponse(path string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(response.Raw) == 0 && response.Obj != nil {
		var err error

		response.Raw, err = json.Marshal(response.Obj)
		if err != nil {
			c.lg.Errorw("Fail to marshal json", err)
		}
	}

	if response.StatusCode == 0 {
		response.StatusCode = http.StatusOK
	}

	c.responses[path] = response
}

func (c *St) Send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, &RequestSt{
		Opts: opts,
		Raw:  reqBody,
	})

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	response, ok := c.responses[opts.Path]
	if !ok {
		c.lg.Infow("Httpc-mock, path not found", "path", opts.Path)
		return nil, http.StatusNotFound, ErrPageNotFound
	}

	if response.Err != nil {
		return nil, 0, response.Err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
			return response.Raw, response.StatusCode, errs.NotAuthorized
		}
		return response.Raw, response.StatusCode, errs.BadStatusCode
	}

	return response.Raw, response.StatusCode, nil
}

func (c *St) SendRecvJson(ctx context.Context, reqBody []byte, repObj any, opts httpc.OptionsSt) ([]byte, int, error) {
	repBody, statusCode, err := c.Send(ctx, reqBody, opts)
	if err != nil {
		return repBody, statusCode, err
	}

	if len(repBody) > 0 && repObj != nil {
		err = json.Unmarshal(repBody, repObj)
		if err != nil {
			return repBody, statusCode, errs.ErrWithDesc{Err: errs.BadJson, Desc: err.Error()}
		}
	}

	return repBody, statusCode, nil
}

func (c *St) GetRequests() []*RequestSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*RequestSt, len(c.requests))
	copy(result, c.requests)

	return result
}

func (c *St) GetRequest(path string) (*RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if req.Opts.Path == path {
			return req, true
		}
	}

	return nil, false
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []*RequestSt{}
	c.responses = map[string]ResponseSt{}
}
