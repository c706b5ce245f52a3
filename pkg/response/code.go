package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 用户模块错误 100xx
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// 订单模块错误 300xx
	ErrOrderNotFound      = 30001
	ErrOrderStateInvalid  = 30002 // 当前状态不允许该操作
	ErrOrderCreateFailed  = 30003
	ErrOrderNotOwner      = 30004
	ErrOrderUpdateFailed  = 30005
	ErrOrderTypeInvalid   = 30006
	ErrOrderAmountInvalid = 30007

	// 支付模块错误 400xx
	ErrPayChannelUnsupported = 40001
	ErrPayPrepayFailed       = 40002

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
