package belief

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLabelNotFound   = errors.New("label not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrZeroSum         = errors.New("weights sum to zero")
)
