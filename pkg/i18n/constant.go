package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_NOT_FOUND       = "error.notfound"
	ERROR_INVALIDARGUMENT = "error.invalidargument"
	ERROR_UNAUTHORIZED    = "error.unauthorized"
	ERROR_FORBIDDEN       = "error.forbidden"
	ERROR_EXIST           = "error.exist"

	ERROR_CONTENT_REQUIRED = "error.journal.content_required"
	ERROR_INVALID_MOOD     = "error.journal.invalid_mood"
	ERROR_INVALID_TAG      = "error.journal.invalid_tag"

	ERROR_INVALID_ACCOUNT        = "error.invalid.account"
	ERROR_SIGNUP_RESTRICTED      = "error.signup.restricted"
	ERROR_EMAIL_ALREADY_REGISTED = "error.email_has_already_registed"
)
