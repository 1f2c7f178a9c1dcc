package services

import "errors"

var (
	ErrMissingFields    = errors.New("all fields must be filled")
	ErrInvalidURL       = errors.New("invalid URL")
	ErrDuplicate        = errors.New("this manga is already saved")
	ErrNotFound         = errors.New("manga not found")
	ErrNoNewChapter     = errors.New("no new chapter detected")
	ErrInvalidChapter   = errors.New("chapter is not a number")
	ErrNoChapterPattern = errors.New("url has no /chapter/<n> segment")
)
