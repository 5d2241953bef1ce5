package domain

type CaptionInput struct {
	ShrineName string
	Text       string
	Goshuin    bool
}

// Captions - подписи для соцсетей
type Captions struct {
	InstagramCaption string `json:"instagramCaption"`
	XCaption         string `json:"xCaption"`
	ThreadsCaption   string `json:"threadsCaption"`
}
