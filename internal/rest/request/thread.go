package request

import "github.com/Guyuepp/go-clean-forum/domain"

type Thread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ToDomain: Request -> Domain
func (r *Thread) ToDomain() domain.AddThreadPayload {
	return domain.AddThreadPayload{
		Title: r.Title,
		Body:  r.Body,
	}
}

// Content is the body of both comment and reply creation.
type Content struct {
	Content string `json:"content"`
}
