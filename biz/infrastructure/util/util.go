package util

import (
	"encoding/json"

	"class-hive/biz/application/dto/basic"
)

func Succeed(msg string) (*basic.Response, error) {
	return &basic.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}

func Fail(code int64, msg string) *basic.Response {
	return &basic.Response{
		Code: code,
		Msg:  msg,
	}
}

// JSONF renders v for log lines.
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
