package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError 字段级校验错误（字段路径 + 违反的规则）
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// FieldErrors 将 binding 校验错误展开为字段级错误列表
// 非校验类错误（如 JSON 语法错误）返回 nil，调用方降级为通用提示
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	list := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		list = append(list, FieldError{
			Field: e.Field(),
			Rule:  e.Tag(),
			Param: e.Param(),
		})
	}
	return list
}
