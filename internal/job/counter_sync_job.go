package job

import (
	"context"
	log "log/slog"
	"strconv"

	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/logger"
	"panganjawara/internal/pkg/redis"
	"panganjawara/internal/pkg/util"
	"panganjawara/internal/service"

	"github.com/google/uuid"
)

// CounterSyncJob menyalin penghitung dari redis kembali ke kolom
// denormalisasi di database, sehingga filter trending dan statistik
// dashboard bisa dihitung lewat SQL biasa.
type CounterSyncJob struct {
	postSvc    service.PostService
	actionSvc  service.PostActionService
	articleSvc service.ArticleService
}

func NewCounterSyncJob(
	postSvc service.PostService,
	actionSvc service.PostActionService,
	articleSvc service.ArticleService,
) *CounterSyncJob {
	return &CounterSyncJob{
		postSvc:    postSvc,
		actionSvc:  actionSvc,
		articleSvc: articleSvc,
	}
}

func (s *CounterSyncJob) Run() {
	traceID := "job-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	s.syncPosts(ctx)
	s.syncArticles(ctx)
}

func (s *CounterSyncJob) syncPosts(ctx context.Context) {
	processingKey := consts.PostDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.PostDirtyKey, processingKey); err != nil {
		// set kosong berarti tidak ada yang berubah sejak flush terakhir
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get post dirty set error", "err", err)
		return
	}

	postIDs, err := util.StrSliceToUint64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert post dirty set error", "err", err)
		return
	}

	for _, pid := range postIDs {
		likes, _ := s.actionSvc.GetPostLikeCount(ctx, pid)
		shares, _ := s.actionSvc.GetPostShareCount(ctx, pid)
		comments, _ := s.actionSvc.GetPostCommentCount(ctx, pid)
		views, _ := s.actionSvc.GetPostViewCount(ctx, pid)

		if err = s.postSvc.UpdatePostCounts(ctx, pid, likes, shares, comments, views); err != nil {
			log.ErrorContext(ctx, "update post counts error", "pid", pid, "err", err)
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete post processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync post counters success", "post_count", len(postIDs))
}

func (s *CounterSyncJob) syncArticles(ctx context.Context) {
	processingKey := consts.ArticleDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.ArticleDirtyKey, processingKey); err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get article dirty set error", "err", err)
		return
	}

	articleIDs, err := util.StrSliceToUint64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert article dirty set error", "err", err)
		return
	}

	for _, aid := range articleIDs {
		views, err := redis.GetInt64(ctx, consts.ArticleViewKey+strconv.FormatUint(aid, 10))
		if err != nil {
			continue
		}
		if err = s.articleSvc.UpdateViewCount(ctx, aid, views); err != nil {
			log.ErrorContext(ctx, "update article view count error", "aid", aid, "err", err)
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete article processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync article counters success", "article_count", len(articleIDs))
}
