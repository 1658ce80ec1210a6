package api

type Topic string

const (
	ImageRequestOpen Topic = "image-request-open"
	ImageLoaded      Topic = "image-loaded"

	ShowError Topic = "show-error"
)
