package constants

// 博客列表常量
const (
	// DefaultPageSize 所有列表视图共享的每页条数
	DefaultPageSize = 10
	// MaxPageSize 单页条数上限
	MaxPageSize = 100
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 登录日志状态常量
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// 登录失败原因常量
const (
	LoginLogFailReasonBadRequest     = "bad_request"
	LoginLogFailReasonBadCredentials = "bad_credentials"
	LoginLogFailReasonUserDisabled   = "user_disabled"
	LoginLogFailReasonCaptcha        = "captcha_failed"
	LoginLogFailReasonInternalError  = "internal_error"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 异步任务类型常量
const (
	TaskCommentNotifyEmail = "email:comment_notify"
)

// 队列名称常量
const (
	QueueDefault = "default"
)
