package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeConflict       ErrorCode = "COMMON_004"
	ErrCodeValidation     ErrorCode = "COMMON_005"
	ErrCodeSerialization  ErrorCode = "COMMON_006"
	ErrCodeConfiguration  ErrorCode = "COMMON_007"
	ErrCodeNotImplemented ErrorCode = "COMMON_008"
)

// Aliases for backward compatibility
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeConfiguration  = ErrCodeConfiguration
	CodeNotImplemented = ErrCodeNotImplemented
	CodeUnknown        = ErrorCode("UNKNOWN")
	CodeOK             = ErrorCode("OK")
)

// Rule Module Error Codes (rule source parsing and compilation)
const (
	ErrCodeRuleSourceUnreadable ErrorCode = "RUL_001"
	ErrCodeRuleSourceMalformed  ErrorCode = "RUL_002"
	ErrCodeRuleInvalid          ErrorCode = "RUL_003"
	ErrCodeRulePatternInvalid   ErrorCode = "RUL_004"
	ErrCodeRuleCategoryDup      ErrorCode = "RUL_005"
	ErrCodeRuleTypeUnknown      ErrorCode = "RUL_006"
)

// Classification Module Error Codes
const (
	ErrCodeClassifierNotReady      ErrorCode = "CLS_001"
	ErrCodeSemanticTierUnavailable ErrorCode = "CLS_002"
)

// Dedup Module Error Codes
const (
	ErrCodeDedupThresholdInvalid ErrorCode = "DED_001"
	ErrCodeTokenizerUnavailable  ErrorCode = "DED_002"
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:       "internal error",
	ErrCodeBadRequest:     "bad request",
	ErrCodeNotFound:       "resource not found",
	ErrCodeConflict:       "resource conflict",
	ErrCodeValidation:     "validation failed",
	ErrCodeSerialization:  "serialization failed",
	ErrCodeConfiguration:  "invalid configuration",
	ErrCodeNotImplemented: "not implemented",

	ErrCodeRuleSourceUnreadable: "rule source could not be read",
	ErrCodeRuleSourceMalformed:  "rule source document is malformed",
	ErrCodeRuleInvalid:          "rule definition is invalid",
	ErrCodeRulePatternInvalid:   "rule pattern failed to compile",
	ErrCodeRuleCategoryDup:      "duplicate category id in rule source",
	ErrCodeRuleTypeUnknown:      "unknown rule entry type",

	ErrCodeClassifierNotReady:      "classifier has no compiled rules",
	ErrCodeSemanticTierUnavailable: "semantic fallback tier is not implemented",

	ErrCodeDedupThresholdInvalid: "invalid dedup similarity threshold",
	ErrCodeTokenizerUnavailable:  "tokenizer backend unavailable",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsConfigurationCode reports whether the code belongs to the configuration
// family: the common configuration code plus every RUL_* code.  Callers use
// this to decide between "fix the rule document" and "file a bug".
func IsConfigurationCode(code ErrorCode) bool {
	if code == ErrCodeConfiguration {
		return true
	}
	return ModuleForCode(code) == "RUL"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
