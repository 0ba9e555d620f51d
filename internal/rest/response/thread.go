package response

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// DateTimeFormat is ISO 8601 with milliseconds in UTC.
const DateTimeFormat = "2006-01-02T15:04:05.000Z"

type AddedThread struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type Reply struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

type Comment struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Content   string  `json:"content"`
	Replies   []Reply `json:"replies"`
	LikeCount int     `json:"likeCount"`
}

type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

type ThreadDetail struct {
	Thread Thread `json:"thread"`
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}

// NewThreadFromDomain: Domain -> Response
func NewThreadFromDomain(t domain.ThreadDetail) ThreadDetail {
	comments := make([]Comment, 0, len(t.Comments))
	for _, c := range t.Comments {
		replies := make([]Reply, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, Reply{
				ID:       r.ID,
				Username: r.Username,
				Date:     formatDate(r.Date),
				Content:  r.Content,
			})
		}
		comments = append(comments, Comment{
			ID:        c.ID,
			Username:  c.Username,
			Date:      formatDate(c.Date),
			Content:   c.Content,
			Replies:   replies,
			LikeCount: c.LikeCount,
		})
	}
	return ThreadDetail{Thread: Thread{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     formatDate(t.Date),
		Username: t.Username,
		Comments: comments,
	}}
}
