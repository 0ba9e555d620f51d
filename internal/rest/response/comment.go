package response

import "github.com/Guyuepp/go-clean-forum/domain"

type AddedComment struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReply struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type LikeState struct {
	Liked bool `json:"liked"`
}
