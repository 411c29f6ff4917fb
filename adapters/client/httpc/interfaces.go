package httpc

import (
	"context"
)

type HttpC interface {
	Send(ctx context.Context, reqBody []byte, opts OptionsSt) ([]byte, int, error)
	SendRecvJson(ctx context.Context, reqBody []byte, repObj any, opts OptionsSt) ([]byte, int, error)
}
