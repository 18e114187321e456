package documents

import "errors"

// Sentinel errors for document operations.
var (
	ErrUnreadable    = errors.New("pdf is unreadable")
	ErrRenderFailed  = errors.New("failed to render page images")
	ErrImageTooLarge = errors.New("page image exceeds max image size")
)
