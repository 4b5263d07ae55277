package payload

import "errors"

var (
	ErrUnsupported = errors.New("unsupported payload type")
	ErrParse       = errors.New("payload parse error")
	ErrRejected    = errors.New("payload rejected")
)
