package thread

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const indexPageSize = 1000

type Service struct {
	threadRepo  domain.ThreadRepository
	threadDB    domain.ThreadDBRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository
	bloomRepo   domain.BloomRepository
	indexGuard  domain.ThreadIndexGuard
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(
	t domain.ThreadRepository,
	tdb domain.ThreadDBRepository,
	c domain.CommentRepository,
	r domain.ReplyRepository,
	l domain.CommentLikeRepository,
	b domain.BloomRepository,
	g domain.ThreadIndexGuard,
) *Service {
	return &Service{
		threadRepo:  t,
		threadDB:    tdb,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
		bloomRepo:   b,
		indexGuard:  g,
	}
}

func (s *Service) AddThread(ctx context.Context, userID string, payload domain.AddThreadPayload) (domain.AddedThread, error) {
	newThread, err := domain.ParseNewThread(payload.Title, payload.Body)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threadRepo.AddThread(ctx, userID, newThread)
}

// GetThreadDetail assembles a thread with its comments, their replies and
// their like counts. Replies and likes are fetched once for the whole thread
// and grouped by comment id.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	header, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	replies, err := s.replyRepo.GetRepliesByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	likes, err := s.likeRepo.GetLikesByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	replyMap := make(map[string][]domain.ReplyRecord, len(comments))
	for _, r := range replies {
		replyMap[r.CommentID] = append(replyMap[r.CommentID], r)
	}
	likeCount := make(map[string]int, len(comments))
	for _, l := range likes {
		likeCount[l.CommentID]++
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		replyDetails := []domain.ReplyDetail{}
		// a deleted comment hides its replies
		if !c.IsDelete {
			for _, r := range replyMap[c.ID] {
				rd, err := domain.ParseReplyDetail(r)
				if err != nil {
					return domain.ThreadDetail{}, err
				}
				replyDetails = append(replyDetails, rd)
			}
		}

		cd, err := domain.ParseCommentDetail(c, replyDetails, likeCount[c.ID])
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		details = append(details, cd)
	}

	return domain.ParseThreadDetail(header, details)
}

// InitThreadIndex pages through every stored thread id and loads it into
// the bloom index. A complete run tells the index guard that negative
// answers can be trusted again.
func (s *Service) InitThreadIndex(ctx context.Context) error {
	var token uint64
	if s.indexGuard != nil {
		token = s.indexGuard.IndexSyncStarted()
	}

	cursor := ""
	total := 0
	for {
		ids, err := s.threadDB.FetchIDs(ctx, cursor, indexPageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < indexPageSize {
			break
		}
	}
	if s.indexGuard != nil {
		s.indexGuard.IndexSynced(token)
	}
	logrus.Infof("thread index loaded with %d ids", total)
	return nil
}
