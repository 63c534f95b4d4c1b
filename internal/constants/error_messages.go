package constants

const (
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeInvalidTransition   = "INVALID_TRANSITION"
	ErrCodeNotTransactionParty = "NOT_TRANSACTION_PARTY"
	ErrCodeSummaryFailed       = "SUMMARY_FAILED"
	ErrCodeInvalidShareLink    = "INVALID_SHARE_LINK"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgProductNotFound     = "product not found"
	ErrMsgTransactionNotFound = "transaction not found"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgInvalidTransition   = "action is not valid for the transaction's current state"
	ErrMsgNotTransactionParty = "user is not a party to this transaction"
	ErrMsgSummaryFailed       = "Failed to generate summary. Please try again later."
	ErrMsgInvalidShareLink    = "share link is not a valid address"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeProductNotFound:     ErrMsgProductNotFound,
	ErrCodeTransactionNotFound: ErrMsgTransactionNotFound,
	ErrCodeUserNotFound:        ErrMsgUserNotFound,
	ErrCodeInvalidTransition:   ErrMsgInvalidTransition,
	ErrCodeNotTransactionParty: ErrMsgNotTransactionParty,
	ErrCodeSummaryFailed:       ErrMsgSummaryFailed,
	ErrCodeInvalidShareLink:    ErrMsgInvalidShareLink,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidShareLink:
		return 400
	case ErrCodeNotTransactionParty:
		return 403
	case ErrCodeProductNotFound, ErrCodeTransactionNotFound, ErrCodeUserNotFound:
		return 404
	case ErrCodeInvalidTransition:
		return 409
	case ErrCodeSummaryFailed:
		return 502
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
