package public

import (
	"errors"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var postNotFoundErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
}

var postRelationErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryInvalid, code: response.CodeBadRequest, key: "error.category_invalid"},
	{target: service.ErrLocationInvalid, code: response.CodeBadRequest, key: "error.location_invalid"},
}

var commentNotFoundErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.comment_not_found"},
}

var profileUpdateErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidUsername, code: response.CodeBadRequest, key: "error.username_invalid"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrUsernameExists, code: response.CodeBadRequest, key: "error.username_exists"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}

func respondPostFetchError(c *gin.Context, err error) {
	respondWithMappedError(c, err, postNotFoundErrorRules, response.CodeInternal, "error.post_fetch_failed")
}

func respondPostSaveError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(postNotFoundErrorRules, postRelationErrorRules), response.CodeInternal, "error.post_save_failed")
}

func respondCommentFetchError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(postNotFoundErrorRules, commentNotFoundErrorRules), response.CodeInternal, "error.comment_fetch_failed")
}

func respondCommentSaveError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(postNotFoundErrorRules, commentNotFoundErrorRules), response.CodeInternal, "error.comment_save_failed")
}

func respondProfileUpdateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, profileUpdateErrorRules, response.CodeInternal, "error.profile_save_failed")
}
