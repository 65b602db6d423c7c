package custom_errors

import "errors"

var (
	ErrPostNotFound         = errors.New("post not found")
	ErrLearningPlanNotFound = errors.New("learning plan not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrForbidden            = errors.New("user is not the owner of this post")
	ErrPostValidation       = errors.New("post validation failed")
	ErrDatabaseQuery        = errors.New("database query error")
	ErrDatabaseScan         = errors.New("database scan error")
	ErrCacheMiss            = errors.New("cache miss")
	ErrExternalServiceError = errors.New("external service error")
)
