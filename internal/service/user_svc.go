package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/middleware"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// UserService 用户注册 / 登录 / 资料 / 量体数据
type UserService struct {
	store storage.Store
}

// NewUserService 工厂方法
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// ==================== 认证 ====================

// Register 用户注册
// 密码 bcrypt 加密后入库，用户名/邮箱唯一性由存储层约束保证
func (s *UserService) Register(ctx context.Context, req *dto.RegisterReq) (*model.User, error) {
	// 1. 密码加密
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %v", err)
	}

	// 2. 组装并入库（重复用户名/邮箱由唯一约束拦截）
	user := &model.User{
		Username:       req.Username,
		Password:       string(hashed),
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		MembershipTier: model.TierStandard,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 用户登录，成功后刷新最后登录时间并签发令牌
func (s *UserService) Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error) {
	// 1. 查用户
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 刷新最后登录时间（失败不阻断登录）
	_ = s.store.UpdateLastLogin(ctx, user.ID, time.Now())

	// 4. 签发令牌
	token, err := middleware.GenerateAccessToken(user.ID, user.Username, string(user.MembershipTier))
	if err != nil {
		return nil, fmt.Errorf("签发令牌失败: %v", err)
	}

	return &dto.LoginResp{
		Token:          token,
		UserID:         user.ID,
		Username:       user.Username,
		MembershipTier: string(user.MembershipTier),
	}, nil
}

// ==================== 用户资料 ====================

// GetProfile 查询用户资料
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateProfile 更新用户资料（仅更新请求中出现的字段）
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.ProfileUpdateReq) (*model.User, error) {
	update := &model.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if req.MembershipTier != nil {
		tier := model.MembershipTier(*req.MembershipTier)
		if !tier.Valid() {
			return nil, fmt.Errorf("%w: 未知会员等级 %s", ErrInvalid, *req.MembershipTier)
		}
		update.MembershipTier = &tier
	}
	if req.Preferences != nil {
		update.Preferences = []byte(req.Preferences)
	}

	user, err := s.store.UpdateUser(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ==================== 量体数据 ====================

// CreateMeasurement 新建量体记录
// 标记为默认时，先清掉该用户其他记录的默认标记
func (s *UserService) CreateMeasurement(ctx context.Context, userID int64, req *dto.MeasurementReq) (*model.Measurement, error) {
	if req.IsDefault {
		if err := s.clearDefaultMeasurement(ctx, userID, 0); err != nil {
			return nil, err
		}
	}

	m := &model.Measurement{
		UserID:    userID,
		Name:      req.Name,
		Chest:     req.Chest,
		Waist:     req.Waist,
		Hips:      req.Hips,
		Inseam:    req.Inseam,
		Shoulders: req.Shoulders,
		Sleeve:    req.Sleeve,
		Neck:      req.Neck,
		Bicep:     req.Bicep,
		Wrist:     req.Wrist,
		Thigh:     req.Thigh,
		Height:    req.Height,
		Weight:    req.Weight,
		Notes:     req.Notes,
		IsDefault: req.IsDefault,
	}
	if err := s.store.CreateMeasurement(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMeasurements 查询用户全部量体记录
func (s *UserService) ListMeasurements(ctx context.Context, userID int64) ([]model.Measurement, error) {
	return s.store.ListMeasurementsByUser(ctx, userID)
}

// UpdateMeasurement 更新量体记录（归属校验 + 默认标记互斥）
func (s *UserService) UpdateMeasurement(ctx context.Context, userID, id int64, req *dto.MeasurementUpdateReq) (*model.Measurement, error) {
	// 1. 归属校验
	existing, err := s.store.GetMeasurement(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	// 2. 置为默认时清掉其他记录的默认标记
	if req.IsDefault != nil && *req.IsDefault {
		if err := s.clearDefaultMeasurement(ctx, userID, id); err != nil {
			return nil, err
		}
	}

	// 3. 更新
	update := &model.MeasurementUpdate{
		Name:      req.Name,
		Chest:     req.Chest,
		Waist:     req.Waist,
		Hips:      req.Hips,
		Inseam:    req.Inseam,
		Shoulders: req.Shoulders,
		Sleeve:    req.Sleeve,
		Neck:      req.Neck,
		Bicep:     req.Bicep,
		Wrist:     req.Wrist,
		Thigh:     req.Thigh,
		Height:    req.Height,
		Weight:    req.Weight,
		Notes:     req.Notes,
		IsDefault: req.IsDefault,
	}
	m, err := s.store.UpdateMeasurement(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// DeleteMeasurement 删除量体记录（被定制方案引用时由存储层拒绝）
func (s *UserService) DeleteMeasurement(ctx context.Context, userID, id int64) error {
	existing, err := s.store.GetMeasurement(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	deleted, err := s.store.DeleteMeasurement(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// clearDefaultMeasurement 取消该用户除 keepID 外所有记录的默认标记
func (s *UserService) clearDefaultMeasurement(ctx context.Context, userID, keepID int64) error {
	list, err := s.store.ListMeasurementsByUser(ctx, userID)
	if err != nil {
		return err
	}
	off := false
	for i := range list {
		if list[i].ID == keepID || !list[i].IsDefault {
			continue
		}
		if _, err := s.store.UpdateMeasurement(ctx, list[i].ID, &model.MeasurementUpdate{IsDefault: &off}); err != nil {
			return err
		}
	}
	return nil
}
