package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/rendau/msg91/adapters/client/httpc"
	"github.com/rendau/msg91/errs"
)

type lgSt struct {
	mu     sync.Mutex
	errors []string
	infos  []string
}

func (l *lgSt) Infow(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *lgSt) Warnw(msg string, args ...any) {}

func (l *lgSt) Errorw(msg string, err any, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func TestSt_Send(t *testing.T) {
	var gotReq *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		switch r.URL.Path {
		case "/otp/verify":
			_, _ = w.Write([]byte(`{"type":"success","message":"OTP verified success"}`))
		case "/otp/denied":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"type":"error","message":"invalid authkey"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"type":"error","message":"bad request"}`))
		}
	}))
	defer srv.Close()

	lg := &lgSt{}
	c := New(lg, httpc.OptionsSt{
		BaseUrl:    srv.URL + "/otp",
		BaseParams: url.Values{"authkey": {"key"}},
	})

	repBody, statusCode, err := c.Send(context.Background(), nil, httpc.OptionsSt{
		Path:   "verify",
		Params: url.Values{"otp": {"1234"}},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if statusCode != http.StatusOK {
		t.Errorf("statusCode = %d", statusCode)
	}
	if string(repBody) != `{"type":"success","message":"OTP verified success"}` {
		t.Errorf("repBody = %s", repBody)
	}
	if gotReq.Method != http.MethodGet {
		t.Errorf("method = %s, want GET", gotReq.Method)
	}
	if q := gotReq.URL.Query(); q.Get("authkey") != "key" || q.Get("otp") != "1234" {
		t.Errorf("query = %v", q)
	}

	repBody, statusCode, err = c.Send(context.Background(), nil, httpc.OptionsSt{Path: "denied"})
	if !errors.Is(err, errs.NotAuthorized) {
		t.Errorf("err = %v, want %v", err, errs.NotAuthorized)
	}
	if statusCode != http.StatusUnauthorized {
		t.Errorf("statusCode = %d", statusCode)
	}
	if len(repBody) == 0 {
		t.Errorf("body must be returned with a bad status")
	}

	_, _, err = c.Send(context.Background(), nil, httpc.OptionsSt{Path: "other"})
	if !errors.Is(err, errs.BadStatusCode) {
		t.Errorf("err = %v, want %v", err, errs.BadStatusCode)
	}

	if len(lg.errors) != 2 {
		t.Errorf("logged %d errors, want 2", len(lg.errors))
	}

	_, _, err = c.Send(context.Background(), nil, httpc.OptionsSt{Path: "other", LogFlags: httpc.NoLogError})
	if err == nil {
		t.Errorf("expected error")
	}
	if len(lg.errors) != 2 {
		t.Errorf("NoLogError must suppress logging, got %d errors", len(lg.errors))
	}
}

func TestSt_SendRecvJson(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}
		if r.URL.Path == "/broken" {
			_, _ = w.Write([]byte(`<html>`))
			return
		}
		_, _ = w.Write([]byte(`{"type":"success","message":"ok"}`))
	}))
	defer srv.Close()

	lg := &lgSt{}
	c := New(lg, httpc.OptionsSt{BaseUrl: srv.URL})

	rep := struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}{}

	_, _, err := c.SendRecvJson(context.Background(), nil, &rep, httpc.OptionsSt{Path: "ok"})
	if err != nil {
		t.Fatalf("SendRecvJson() error = %v", err)
	}
	if rep.Type != "success" || rep.Message != "ok" {
		t.Errorf("rep = %+v", rep)
	}

	repBody, _, err := c.SendRecvJson(context.Background(), nil, &rep, httpc.OptionsSt{Path: "broken"})
	if !errors.Is(err, errs.BadJson) {
		t.Errorf("err = %v, want %v", err, errs.BadJson)
	}
	if string(repBody) != `<html>` {
		t.Errorf("repBody = %s", repBody)
	}
}

func TestSt_Send_ctxCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	lg := &lgSt{}
	c := New(lg, httpc.OptionsSt{BaseUrl: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := c.Send(ctx, nil, httpc.OptionsSt{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want %v", err, context.Canceled)
	}
	if len(lg.errors) != 1 {
		t.Errorf("logged %d errors, want 1", len(lg.errors))
	}
}
