package httputil

// Machine-readable error codes returned in ErrorResponse.Code
const (
	CodeInternalError      = "internal_error"
	CodeInvalidRequestBody = "invalid_request_body"
	CodeInvalidParameter   = "invalid_parameter"
	CodeTooManyRequests    = "too_many_requests"
	CodeCooldownActive     = "cooldown_active"
	CodeRequestTooLarge    = "request_too_large"

	// Request authentication. Every signature, client or token failure
	// except expiry shares CodeUnauthorized.
	CodeUnauthorized = "unauthorized"
	CodeTokenExpired = "token_expired"

	// Account management
	CodeInvalidCredentials        = "invalid_credentials"
	CodeEmailNotVerified          = "email_not_verified"
	CodeUsernameAlreadyExists     = "username_already_exists"
	CodeEmailAlreadyExists        = "email_already_exists"
	CodeValidationFailed          = "validation_failed"
	CodeInvalidRefreshToken       = "invalid_refresh_token"
	CodeRefreshTokenRequired      = "refresh_token_required"
	CodeInvalidScope              = "invalid_scope"
	CodeVerificationTokenRequired = "verification_token_required"
	CodeVerificationFailed        = "verification_failed"
	CodeVerificationExpired       = "verification_expired"
	CodeAlreadyVerified           = "already_verified"
	CodeInvalidResetToken         = "invalid_reset_token"

	// Service error categories
	CodeNotFound        = "not_found"
	CodeForbidden       = "forbidden"
	CodeInvalidArgument = "invalid_argument"
	CodeAlreadyExists   = "already_exists"
	CodeConflict        = "conflict"
)
