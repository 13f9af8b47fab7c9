package i18n

// messages 各语言文案表，key 与接口错误码一一对应
var messages = map[string]map[string]string{
	LocaleZH: {
		"common.ok": "成功",

		"error.bad_request":            "请求参数有误",
		"error.unauthorized":           "未登录或登录已过期",
		"error.forbidden":              "没有权限执行该操作",
		"error.internal":               "服务器内部错误",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable": "限流服务暂不可用，请稍后再试",
		"error.login_too_many":         "登录尝试过多，请 %d 秒后再试",

		"error.auth_header_missing": "缺少认证信息",
		"error.auth_header_invalid": "认证信息格式不正确",
		"error.token_invalid":       "登录凭证无效",
		"error.token_revoked":       "登录凭证已失效，请重新登录",
		"error.jwt_secret_missing":  "服务端认证配置缺失",
		"error.invalid_credentials": "用户名或密码错误",
		"error.user_disabled":       "账号已被禁用",
		"error.register_failed":     "注册失败，请稍后再试",
		"error.login_failed":        "登录失败，请稍后再试",

		"error.password_weak":            "密码强度不足",
		"error.password_min_length":      "密码长度不能少于 %d 位",
		"error.password_require_upper":   "密码需要包含大写字母",
		"error.password_require_lower":   "密码需要包含小写字母",
		"error.password_require_number":  "密码需要包含数字",
		"error.password_require_special": "密码需要包含特殊字符",
		"error.old_password_invalid":     "原密码不正确",
		"error.password_change_failed":   "修改密码失败，请稍后再试",

		"error.username_exists":       "用户名已被占用",
		"error.email_exists":          "邮箱已被注册",
		"error.username_invalid":      "用户名格式不正确",
		"error.email_invalid":         "邮箱格式不正确",
		"error.user_not_found":        "用户不存在",
		"error.user_fetch_failed":     "获取用户信息失败",
		"error.user_save_failed":      "保存用户信息失败",
		"error.user_id_invalid":       "用户 ID 无效",
		"error.user_id_type_invalid":  "用户 ID 类型错误",
		"error.admin_id_invalid":      "管理员 ID 无效",
		"error.admin_id_type_invalid": "管理员 ID 类型错误",
		"error.profile_fetch_failed":  "获取个人资料失败",
		"error.profile_save_failed":   "保存个人资料失败",

		"error.post_not_found":     "文章不存在",
		"error.post_fetch_failed":  "获取文章失败",
		"error.post_save_failed":   "保存文章失败",
		"error.post_delete_failed": "删除文章失败",
		"error.post_id_invalid":    "文章 ID 无效",
		"error.pub_date_invalid":   "发布时间格式不正确",
		"error.category_invalid":   "所选分类不可用",
		"error.location_invalid":   "所选地点不可用",

		"error.category_not_found":     "分类不存在",
		"error.category_fetch_failed":  "获取分类失败",
		"error.category_save_failed":   "保存分类失败",
		"error.category_delete_failed": "删除分类失败",
		"error.category_in_use":        "分类下仍有文章，无法删除",
		"error.slug_exists":            "分类标识已存在",

		"error.location_not_found":     "地点不存在",
		"error.location_fetch_failed":  "获取地点失败",
		"error.location_save_failed":   "保存地点失败",
		"error.location_delete_failed": "删除地点失败",
		"error.location_in_use":        "地点下仍有文章，无法删除",

		"error.comment_not_found":     "评论不存在",
		"error.comment_fetch_failed":  "获取评论失败",
		"error.comment_save_failed":   "保存评论失败",
		"error.comment_delete_failed": "删除评论失败",

		"error.captcha_required":        "请先完成验证码",
		"error.captcha_invalid":         "验证码不正确或已过期",
		"error.captcha_config_invalid":  "验证码配置错误",
		"error.captcha_generate_failed": "生成验证码失败",

		"error.login_log_fetch_failed": "获取登录日志失败",

		"error.config_fetch_failed":         "获取配置失败",
		"error.save_failed":                 "保存失败",
		"error.admin_username_invalid":      "管理员用户名格式不正确",
		"error.admin_username_exists":       "管理员用户名已存在",
		"error.admin_create_failed":         "创建管理员失败",
		"error.admin_update_failed":         "更新管理员失败",
		"error.admin_delete_failed":         "删除管理员失败",
		"error.admin_delete_self_forbidden": "不能删除当前登录的管理员",
		"error.admin_delete_protected":      "该管理员受保护，无法删除",
		"error.admin_delete_last_forbidden": "至少需要保留一名管理员",

		"email.comment_notify.subject": "你的文章《%s》有新评论",
		"email.comment_notify.body":    "你的文章《%s》收到来自 %s 的新评论：\n\n%s",
	},
	LocaleTW: {
		"common.ok": "成功",

		"error.bad_request":            "請求參數有誤",
		"error.unauthorized":           "未登入或登入已過期",
		"error.forbidden":              "沒有權限執行該操作",
		"error.internal":               "伺服器內部錯誤",
		"error.rate_limited":           "請求過於頻繁，請 %d 秒後再試",
		"error.rate_limit_unavailable": "限流服務暫不可用，請稍後再試",
		"error.login_too_many":         "登入嘗試過多，請 %d 秒後再試",

		"error.auth_header_missing": "缺少認證資訊",
		"error.auth_header_invalid": "認證資訊格式不正確",
		"error.token_invalid":       "登入憑證無效",
		"error.token_revoked":       "登入憑證已失效，請重新登入",
		"error.jwt_secret_missing":  "服務端認證配置缺失",
		"error.invalid_credentials": "使用者名稱或密碼錯誤",
		"error.user_disabled":       "帳號已被停用",
		"error.register_failed":     "註冊失敗，請稍後再試",
		"error.login_failed":        "登入失敗，請稍後再試",

		"error.password_weak":            "密碼強度不足",
		"error.password_min_length":      "密碼長度不能少於 %d 位",
		"error.password_require_upper":   "密碼需要包含大寫字母",
		"error.password_require_lower":   "密碼需要包含小寫字母",
		"error.password_require_number":  "密碼需要包含數字",
		"error.password_require_special": "密碼需要包含特殊字元",
		"error.old_password_invalid":     "原密碼不正確",
		"error.password_change_failed":   "修改密碼失敗，請稍後再試",

		"error.username_exists":       "使用者名稱已被占用",
		"error.email_exists":          "信箱已被註冊",
		"error.username_invalid":      "使用者名稱格式不正確",
		"error.email_invalid":         "信箱格式不正確",
		"error.user_not_found":        "使用者不存在",
		"error.user_fetch_failed":     "取得使用者資訊失敗",
		"error.user_save_failed":      "儲存使用者資訊失敗",
		"error.user_id_invalid":       "使用者 ID 無效",
		"error.user_id_type_invalid":  "使用者 ID 型別錯誤",
		"error.admin_id_invalid":      "管理員 ID 無效",
		"error.admin_id_type_invalid": "管理員 ID 型別錯誤",
		"error.profile_fetch_failed":  "取得個人資料失敗",
		"error.profile_save_failed":   "儲存個人資料失敗",

		"error.post_not_found":     "文章不存在",
		"error.post_fetch_failed":  "取得文章失敗",
		"error.post_save_failed":   "儲存文章失敗",
		"error.post_delete_failed": "刪除文章失敗",
		"error.post_id_invalid":    "文章 ID 無效",
		"error.pub_date_invalid":   "發布時間格式不正確",
		"error.category_invalid":   "所選分類不可用",
		"error.location_invalid":   "所選地點不可用",

		"error.category_not_found":     "分類不存在",
		"error.category_fetch_failed":  "取得分類失敗",
		"error.category_save_failed":   "儲存分類失敗",
		"error.category_delete_failed": "刪除分類失敗",
		"error.category_in_use":        "分類下仍有文章，無法刪除",
		"error.slug_exists":            "分類標識已存在",

		"error.location_not_found":     "地點不存在",
		"error.location_fetch_failed":  "取得地點失敗",
		"error.location_save_failed":   "儲存地點失敗",
		"error.location_delete_failed": "刪除地點失敗",
		"error.location_in_use":        "地點下仍有文章，無法刪除",

		"error.comment_not_found":     "評論不存在",
		"error.comment_fetch_failed":  "取得評論失敗",
		"error.comment_save_failed":   "儲存評論失敗",
		"error.comment_delete_failed": "刪除評論失敗",

		"error.captcha_required":        "請先完成驗證碼",
		"error.captcha_invalid":         "驗證碼不正確或已過期",
		"error.captcha_config_invalid":  "驗證碼配置錯誤",
		"error.captcha_generate_failed": "產生驗證碼失敗",

		"error.login_log_fetch_failed": "取得登入日誌失敗",
		"error.config_fetch_failed":         "取得配置失敗",
		"error.save_failed":                 "儲存失敗",
		"error.admin_username_invalid":      "管理員使用者名稱格式不正確",
		"error.admin_username_exists":       "管理員使用者名稱已存在",
		"error.admin_create_failed":         "建立管理員失敗",
		"error.admin_update_failed":         "更新管理員失敗",
		"error.admin_delete_failed":         "刪除管理員失敗",
		"error.admin_delete_self_forbidden": "不能刪除當前登入的管理員",
		"error.admin_delete_protected":      "該管理員受保護，無法刪除",
		"error.admin_delete_last_forbidden": "至少需要保留一名管理員",

		"email.comment_notify.subject": "你的文章《%s》有新留言",
		"email.comment_notify.body":    "你的文章《%s》收到來自 %s 的新留言：\n\n%s",
	},
	LocaleEN: {
		"common.ok": "success",

		"error.bad_request":            "invalid request parameters",
		"error.unauthorized":           "not signed in or session expired",
		"error.forbidden":              "you are not allowed to perform this action",
		"error.internal":               "internal server error",
		"error.rate_limited":           "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "rate limiter unavailable, please retry later",
		"error.login_too_many":         "too many login attempts, retry in %d seconds",

		"error.auth_header_missing": "authorization header missing",
		"error.auth_header_invalid": "authorization header malformed",
		"error.token_invalid":       "invalid token",
		"error.token_revoked":       "token revoked, please sign in again",
		"error.jwt_secret_missing":  "server auth configuration missing",
		"error.invalid_credentials": "incorrect username or password",
		"error.user_disabled":       "account disabled",
		"error.register_failed":     "registration failed, please retry later",
		"error.login_failed":        "login failed, please retry later",

		"error.password_weak":            "password is too weak",
		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password must contain an uppercase letter",
		"error.password_require_lower":   "password must contain a lowercase letter",
		"error.password_require_number":  "password must contain a digit",
		"error.password_require_special": "password must contain a special character",
		"error.old_password_invalid":     "current password is incorrect",
		"error.password_change_failed":   "failed to change password, please retry later",

		"error.username_exists":       "username already taken",
		"error.email_exists":          "email already registered",
		"error.username_invalid":      "invalid username format",
		"error.email_invalid":         "invalid email format",
		"error.user_not_found":        "user not found",
		"error.user_fetch_failed":     "failed to fetch user",
		"error.user_save_failed":      "failed to save user",
		"error.user_id_invalid":       "invalid user id",
		"error.user_id_type_invalid":  "invalid user id type",
		"error.admin_id_invalid":      "invalid admin id",
		"error.admin_id_type_invalid": "invalid admin id type",
		"error.profile_fetch_failed":  "failed to fetch profile",
		"error.profile_save_failed":   "failed to save profile",

		"error.post_not_found":     "post not found",
		"error.post_fetch_failed":  "failed to fetch post",
		"error.post_save_failed":   "failed to save post",
		"error.post_delete_failed": "failed to delete post",
		"error.post_id_invalid":    "invalid post id",
		"error.pub_date_invalid":   "invalid publish date format",
		"error.category_invalid":   "selected category unavailable",
		"error.location_invalid":   "selected location unavailable",

		"error.category_not_found":     "category not found",
		"error.category_fetch_failed":  "failed to fetch category",
		"error.category_save_failed":   "failed to save category",
		"error.category_delete_failed": "failed to delete category",
		"error.category_in_use":        "category still has posts and cannot be deleted",
		"error.slug_exists":            "category slug already exists",

		"error.location_not_found":     "location not found",
		"error.location_fetch_failed":  "failed to fetch location",
		"error.location_save_failed":   "failed to save location",
		"error.location_delete_failed": "failed to delete location",
		"error.location_in_use":        "location still has posts and cannot be deleted",

		"error.comment_not_found":     "comment not found",
		"error.comment_fetch_failed":  "failed to fetch comment",
		"error.comment_save_failed":   "failed to save comment",
		"error.comment_delete_failed": "failed to delete comment",

		"error.captcha_required":        "captcha required",
		"error.captcha_invalid":         "captcha incorrect or expired",
		"error.captcha_config_invalid":  "captcha configuration invalid",
		"error.captcha_generate_failed": "failed to generate captcha",

		"error.login_log_fetch_failed": "failed to fetch login logs",
		"error.config_fetch_failed":         "failed to fetch configuration",
		"error.save_failed":                 "failed to save",
		"error.admin_username_invalid":      "invalid admin username format",
		"error.admin_username_exists":       "admin username already exists",
		"error.admin_create_failed":         "failed to create admin",
		"error.admin_update_failed":         "failed to update admin",
		"error.admin_delete_failed":         "failed to delete admin",
		"error.admin_delete_self_forbidden": "cannot delete the currently signed-in admin",
		"error.admin_delete_protected":      "this admin is protected and cannot be deleted",
		"error.admin_delete_last_forbidden": "at least one admin must remain",

		"email.comment_notify.subject": "New comment on your post \"%s\"",
		"email.comment_notify.body":    "Your post \"%s\" received a new comment from %s:\n\n%s",
	},
}
