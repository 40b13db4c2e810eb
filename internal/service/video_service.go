package service

import (
	"context"
	"strings"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/repository"

	"github.com/jinzhu/copier"
)

type VideoService interface {
	ListVideos(ctx context.Context, category string, page, pageSize int) ([]*dto.VideoDTO, int64, error)
	GetVideo(ctx context.Context, id uint64) (*dto.VideoDTO, error)
	CreateVideo(ctx context.Context, req *dto.CreateVideoDTO) (*dto.VideoDTO, error)
	UpdateVideo(ctx context.Context, id uint64, req *dto.UpdateVideoDTO) (*dto.VideoDTO, error)
	DeleteVideo(ctx context.Context, id uint64) error
}

type videoServiceImpl struct {
	videoRepo repository.VideoRepo
}

func NewVideoService(videoRepo repository.VideoRepo) VideoService {
	return &videoServiceImpl{videoRepo: videoRepo}
}

func (s *videoServiceImpl) ListVideos(ctx context.Context, category string, page, pageSize int) ([]*dto.VideoDTO, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, ErrPageOutOfRange
	}

	total, err := s.videoRepo.CountVideos(ctx, category)
	if err != nil {
		return nil, 0, err
	}

	videos, err := s.videoRepo.ListVideos(ctx, category, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}

	list := make([]*dto.VideoDTO, 0, len(videos))
	for _, video := range videos {
		list = append(list, s.convertToVideoDTO(video))
	}
	return list, total, nil
}

func (s *videoServiceImpl) GetVideo(ctx context.Context, id uint64) (*dto.VideoDTO, error) {
	video, err := s.videoRepo.GetVideo(ctx, id)
	if err != nil {
		return nil, ErrVideoNotFound
	}
	return s.convertToVideoDTO(video), nil
}

func (s *videoServiceImpl) CreateVideo(ctx context.Context, req *dto.CreateVideoDTO) (*dto.VideoDTO, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.VideoURL) == "" {
		return nil, ErrParamInvalid
	}

	video := &model.Video{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		VideoURL:        strings.TrimSpace(req.VideoURL),
		Category:        req.Category,
		DurationSeconds: req.DurationSeconds,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.videoRepo.CreateVideo(ctx, video, req.ImageIDs); err != nil {
		return nil, err
	}

	created, err := s.videoRepo.GetVideo(ctx, video.ID)
	if err != nil {
		return nil, err
	}
	return s.convertToVideoDTO(created), nil
}

func (s *videoServiceImpl) UpdateVideo(ctx context.Context, id uint64, req *dto.UpdateVideoDTO) (*dto.VideoDTO, error) {
	video, err := s.videoRepo.GetVideo(ctx, id)
	if err != nil {
		return nil, ErrVideoNotFound
	}

	if req.Title != "" {
		video.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		video.Description = req.Description
	}
	if req.VideoURL != "" {
		video.VideoURL = strings.TrimSpace(req.VideoURL)
	}
	if req.Category != "" {
		video.Category = req.Category
	}
	if req.DurationSeconds != nil {
		video.DurationSeconds = *req.DurationSeconds
	}
	video.UpdatedAt = time.Now()

	if err = s.videoRepo.UpdateVideo(ctx, video, req.ImageIDs); err != nil {
		return nil, err
	}

	updated, err := s.videoRepo.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.convertToVideoDTO(updated), nil
}

func (s *videoServiceImpl) DeleteVideo(ctx context.Context, id uint64) error {
	if _, err := s.videoRepo.GetVideo(ctx, id); err != nil {
		return ErrVideoNotFound
	}
	return s.videoRepo.DeleteVideo(ctx, id)
}

func (s *videoServiceImpl) convertToVideoDTO(video *model.Video) *dto.VideoDTO {
	item := &dto.VideoDTO{}
	_ = copier.Copy(item, video)
	item.ViewCount = int64(video.ViewsCount)
	item.CreatedAt = video.CreatedAt.Format("2006-01-02 15:04:05")
	item.Images = ConvertImageDTOs(video.Images)
	return item
}
