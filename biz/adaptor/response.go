package adaptor

import (
	"context"
	"net/http"

	"class-hive/biz/infrastructure/util"
	"class-hive/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess renders a handler result. Business errors carry a grpc code
// which decides the HTTP status; anything untyped becomes a 500.
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	s, _ := status.FromError(err)
	c.JSON(httpStatus(s.Code()), &struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}{
		Code: int(s.Code()),
		Msg:  s.Message(),
	})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	}
	// custom business codes surface as a plain bad request
	if code >= 1000 {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
