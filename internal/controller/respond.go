package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/service"
	"emperor_bespoke_v1/internal/storage"
)

// respondErr 业务错误 -> HTTP 状态码
func respondErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalid):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case storage.IsDuplicate(err):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case storage.IsForeignKey(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respondBindErr 请求体校验失败，能展开字段级错误时一并返回
func respondBindErr(ctx *gin.Context, err error) {
	if fields := dto.FieldErrors(err); fields != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数校验失败", "fields": fields})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
}

// parseID 解析路径中的数字 ID，非法时返回 (0, false) 并已写出响应
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的 " + name})
		return 0, false
	}
	return id, true
}
