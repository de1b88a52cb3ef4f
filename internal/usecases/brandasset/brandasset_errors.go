package brandasset

import "errors"

var (
	ErrAssetNotFound = errors.New("Asset not found")
	ErrNoFile        = errors.New("No file provided")
)
