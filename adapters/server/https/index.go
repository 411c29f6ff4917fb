package https

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rendau/msg91/adapters/logger"
	"github.com/rendau/msg91/errs"
	"github.com/rendau/msg91/types"
	"github.com/rs/cors"
)

const (
	ReadHeaderTimeout = 10 * time.Second
	ReadTimeout       = 2 * time.Minute
	MaxHeaderBytes    = 300 * 1024
)

type St struct {
	lg logger.Lite

	addr   string
	server *http.Server
	eChan  chan error
}

func Start(addr string, handler http.Handler, lg logger.Lite) *St {
	s := &St{
		lg:   lg,
		addr: addr,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			MaxHeaderBytes:    MaxHeaderBytes,
		},
		eChan: make(chan error, 1),
	}

	s.lg.Infow("Start rest-api", "addr", s.server.Addr)

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.lg.Errorw("Http server closed", err)
			s.eChan <- err
		}
	}()

	return s
}

func (s *St) Wait() <-chan error {
	return s.eChan
}

func (s *St) Shutdown(timeout time.Duration) bool {
	defer close(s.eChan)

	ctx, ctxCancel := context.WithTimeout(context.Background(), timeout)
	defer ctxCancel()

	err := s.server.Shutdown(ctx)
	if err != nil {
		s.lg.Errorw("Fail to shutdown http-api", err, "addr", s.addr)
		return false
	}

	return true
}

func Error(c *gin.Context, err error) bool {
	if err != nil {
		_ = c.Error(err)
		return true
	}
	return false
}

func BindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err != nil {
		Error(c, errs.ErrWithDesc{
			Err:  errs.InvalidArgument,
			Desc: err.Error(),
		})

		return false
	}

	return true
}

// MwRecovery turns errors attached to the context and panics into responses.
// errs.Err anywhere in the chain answers 400 with its code, anything else 500.
func MwRecovery(lg logger.WarnAndError) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			var err error

			if recoverRep := recover(); recoverRep != nil {
				var ok bool
				if err, ok = recoverRep.(error); !ok {
					err = errors.New(fmt.Sprint(recoverRep))
				}
			} else if gErr := c.Errors.Last(); gErr != nil {
				if gErr.IsType(gin.ErrorTypeBind) {
					err = errs.ErrWithDesc{
						Err:  errs.BadJson,
						Desc: gErr.Error(),
					}
				} else {
					err = gErr.Err
				}
			}

			if err == nil {
				return
			}

			c.AbortWithStatusJSON(ErrorStatusAndRep(lg, c, err))
		}()

		c.Next()
	}
}

func ErrorStatusAndRep(lg logger.WarnAndError, c *gin.Context, err error) (int, any) {
	if descErr, ok := err.(errs.ErrWithDesc); ok {
		return http.StatusBadRequest, types.ErrRep{
			ErrorCode: descErr.Err.Error(),
			Desc:      descErr.Desc,
		}
	}

	var cErr errs.Err
	if errors.As(err, &cErr) {
		rep := types.ErrRep{ErrorCode: cErr.Error()}
		if err.Error() != cErr.Error() {
			rep.Desc = err.Error()
		}
		return http.StatusBadRequest, rep
	}

	lg.Errorw(
		"Error in http handler",
		err,
		"method", c.Request.Method,
		"path", c.Request.URL.String(),
	)

	return http.StatusInternalServerError, types.ErrRep{ErrorCode: "internal_error"}
}

// MwCors wraps the whole handler, allowing every origin.
func MwCors(handler http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           604800,
	}).Handler(handler)
}
