package engine

// Code 错误码
type Code string

const (
	CodeNotFound            Code = "NOT_FOUND"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeNotActive           Code = "NOT_ACTIVE"
	CodeExpired             Code = "EXPIRED"
	CodeNotFailed           Code = "NOT_FAILED"
	CodeNotAvailable        Code = "NOT_AVAILABLE"
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"
	CodeInsufficientVotes   Code = "INSUFFICIENT_VOTES"
	CodeAlreadyVoted        Code = "ALREADY_VOTED"
	CodeAlreadyWithdrawn    Code = "ALREADY_WITHDRAWN"
	CodeNoContribution      Code = "NO_CONTRIBUTION"
)

// Error 引擎操作错误，携带机器可读错误码
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is 按错误码比较，支持 errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrProjectNotFound     = &Error{CodeNotFound, "invalid project ID"}
	ErrRequestNotFound     = &Error{CodeNotFound, "invalid withdraw request ID"}
	ErrInvalidGoal         = &Error{CodeInvalidInput, "goal amount must be greater than zero"}
	ErrInvalidDuration     = &Error{CodeInvalidInput, "duration must be greater than zero"}
	ErrInvalidAmount       = &Error{CodeInvalidInput, "amount must be greater than zero"}
	ErrNotActive           = &Error{CodeNotActive, "project is not active"}
	ErrExpired             = &Error{CodeExpired, "project is expired"}
	ErrNotFailed           = &Error{CodeNotFailed, "project is not failed"}
	ErrNotSuccessful       = &Error{CodeNotAvailable, "project funds are not available for withdrawal"}
	ErrNotCreator          = &Error{CodeUnauthorized, "only the project creator can withdraw funds"}
	ErrNotContributor      = &Error{CodeUnauthorized, "only contributors can vote"}
	ErrInsufficientBalance = &Error{CodeInsufficientBalance, "insufficient balance"}
	ErrInsufficientVotes   = &Error{CodeInsufficientVotes, "not enough vote weight to release funds"}
	ErrAlreadyVoted        = &Error{CodeAlreadyVoted, "already voted"}
	ErrAlreadyWithdrawn    = &Error{CodeAlreadyWithdrawn, "already withdrawn"}
	ErrNoContribution      = &Error{CodeNoContribution, "no contribution to refund"}
)
