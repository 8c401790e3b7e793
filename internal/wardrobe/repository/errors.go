package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load snapshot")
	ErrFailedToSave = errors.New("failed to save snapshot")
)
