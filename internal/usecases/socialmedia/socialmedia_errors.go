package socialmedia

import "errors"

var (
	ErrPostNotFound = errors.New("Post not found")
	ErrTooManyPosts = errors.New("Cannot schedule more than 50 posts at once")
)

const MaxBulkPosts = 50
