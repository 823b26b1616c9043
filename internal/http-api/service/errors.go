package service

import "errors"

// Sentinel errors the handlers map onto HTTP status codes.
var (
	ErrWeekExists           = errors.New("week already exists")
	ErrWeekNotFound         = errors.New("week not found")
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrAlreadyVoted         = errors.New("already voted")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrNotCommentAuthor     = errors.New("unauthorized")
	ErrEmptyComment         = errors.New("comment cannot be empty")
)
