package job

import (
	"context"
	log "log/slog"
	"time"

	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/logger"
	"panganjawara/internal/pkg/minio"
	"panganjawara/internal/repository"

	"github.com/google/uuid"
)

const pendingImageTTL = 24 * time.Hour

// MediaCleanupJob membuang gambar yang diunggah tetapi tidak pernah
// diklaim oleh postingan, komentar, ataupun konten admin.
type MediaCleanupJob struct {
	imageRepo repository.ImageRepo
}

func NewMediaCleanupJob(imageRepo repository.ImageRepo) *MediaCleanupJob {
	return &MediaCleanupJob{imageRepo: imageRepo}
}

func (s *MediaCleanupJob) Run() {
	traceID := "job-media-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	images, err := s.imageRepo.ListPendingBefore(ctx, time.Now().Add(-pendingImageTTL))
	if err != nil {
		log.ErrorContext(ctx, "list pending images error", "err", err)
		return
	}
	if len(images) == 0 {
		return
	}

	count := 0
	for _, img := range images {
		if err = minio.DeleteFile(ctx, img.FileKey); err != nil {
			log.ErrorContext(ctx, "delete expired file from minio error", "fileKey", img.FileKey, "err", err)
			continue
		}
		// thumbnail mungkin tidak ada untuk unggahan yang gagal diproses
		_ = minio.DeleteFile(ctx, consts.ThumbPrefix+img.FileKey)

		if err = s.imageRepo.DeleteImage(ctx, img.ID); err != nil {
			log.ErrorContext(ctx, "delete image row error", "id", img.ID, "err", err)
			continue
		}
		count++
	}

	log.InfoContext(ctx, "media cleanup job finished", "cleaned_count", count)
}
