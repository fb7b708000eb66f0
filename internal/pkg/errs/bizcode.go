package errs

const (
	BizCodeInvalidParams = 1001

	BizCodeInvalidVersion    = 9001
	BizCodeUnknownDeployment = 9002
)
