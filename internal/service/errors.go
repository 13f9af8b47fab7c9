package service

import "errors"

// 业务层哨兵错误，处理器按 errors.Is 映射为响应码
var (
	ErrNotFound           = errors.New("record not found")
	ErrOwnershipDenied    = errors.New("not the owner of this resource")
	ErrSlugExists         = errors.New("slug already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrInvalidPassword    = errors.New("old password incorrect")
	ErrCategoryInvalid    = errors.New("category unavailable")
	ErrLocationInvalid    = errors.New("location unavailable")
	ErrCategoryInUse      = errors.New("category still has posts")
	ErrLocationInUse      = errors.New("location still has posts")
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha configuration invalid")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
