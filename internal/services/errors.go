package services

import "errors"

// Dashboard service errors
var (
	ErrUnknownDataset   = errors.New("unknown dataset")
	ErrUnknownDimension = errors.New("unknown rollup dimension")
	ErrNoDirectSplit    = errors.New("dataset has no direct sales flag")
	ErrInvalidAction    = errors.New("invalid filter action")
)
