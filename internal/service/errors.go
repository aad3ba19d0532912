package service

import "errors"

// 业务层错误，控制器按此映射 HTTP 状态码
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrForbidden          = errors.New("无权访问该资源")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalid            = errors.New("请求不合法")
)
