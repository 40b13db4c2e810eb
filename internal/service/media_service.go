package service

import (
	"bytes"
	"context"
	"io"
	log "log/slog"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/imagex"
	"panganjawara/internal/pkg/markdown"
	"panganjawara/internal/pkg/minio"
	"panganjawara/internal/pkg/util"
	"panganjawara/internal/repository"

	"github.com/google/uuid"
)

type MediaService interface {
	Upload(ctx context.Context, clientIDs []string, files []*multipart.FileHeader) (*dto.UploadResultDTO, error)
	RenderView(ctx context.Context, id uint64, t imagex.Transform) ([]byte, string, error)
	Download(ctx context.Context, id uint64) (io.ReadCloser, *model.Image, error)
	GetImageRefs(ctx context.Context, ids []uint64) ([]markdown.ImageRef, error)
	DeleteImage(ctx context.Context, id uint64) error
}

type mediaServiceImpl struct {
	imageRepo repository.ImageRepo
}

func NewMediaService(imageRepo repository.ImageRepo) MediaService {
	return &mediaServiceImpl{imageRepo: imageRepo}
}

// Upload menerima batch berkas berpasangan dengan id sementara dari
// klien dan mengembalikan peta id sementara ke id server. Semua gambar
// masuk sebagai pending sampai diklaim konten induknya.
func (s *mediaServiceImpl) Upload(ctx context.Context, clientIDs []string, files []*multipart.FileHeader) (*dto.UploadResultDTO, error) {
	if len(files) == 0 || len(files) != len(clientIDs) {
		return nil, ErrParamInvalid
	}
	if len(files) > consts.MaxCommentImages {
		return nil, ErrTooManyImages
	}

	images := make([]*model.Image, 0, len(files))
	for i, header := range files {
		if header.Size > consts.MaxUploadBytes {
			return nil, ErrFileTooLarge
		}

		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		mimeType, err := util.GetSafeContentType(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		if !strings.HasPrefix(mimeType, consts.MimePrefixImage) {
			_ = file.Close()
			return nil, ErrFileNotSupported
		}

		fileKey := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
		if _, err = minio.UploadFile(ctx, fileKey, file, header.Size, mimeType); err != nil {
			_ = file.Close()
			return nil, err
		}

		s.uploadThumbnail(ctx, file, fileKey, mimeType)
		_ = file.Close()

		images = append(images, &model.Image{
			OwnerType:    consts.OwnerPending,
			FileKey:      fileKey,
			MimeType:     mimeType,
			Size:         header.Size,
			OriginalName: header.Filename,
			SortOrder:    i,
			CreatedAt:    time.Now(),
		})
	}

	if err := s.imageRepo.CreateImages(ctx, images); err != nil {
		return nil, err
	}

	result := &dto.UploadResultDTO{
		IDMap:  make(map[string]uint64, len(images)),
		Images: make([]*dto.ImageDTO, 0, len(images)),
	}
	for i, img := range images {
		result.IDMap[clientIDs[i]] = img.ID
		result.Images = append(result.Images, &dto.ImageDTO{
			ID:           img.ID,
			URL:          minio.GetPublicURL(img.FileKey),
			ThumbnailURL: minio.GetPublicURL(consts.ThumbPrefix + img.FileKey),
			MimeType:     img.MimeType,
			OriginalName: img.OriginalName,
			SortOrder:    img.SortOrder,
		})
	}
	return result, nil
}

// uploadThumbnail best-effort; gagal thumbnail tidak menggagalkan unggah.
func (s *mediaServiceImpl) uploadThumbnail(ctx context.Context, file multipart.File, fileKey, mimeType string) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return
	}
	img, err := imagex.Decode(file)
	if err != nil {
		log.WarnContext(ctx, "decode for thumbnail failed", "fileKey", fileKey, "err", err)
		return
	}

	var buf bytes.Buffer
	if err = imagex.Encode(&buf, imagex.Thumbnail(img), mimeType); err != nil {
		return
	}
	if _, err = minio.UploadFile(ctx, consts.ThumbPrefix+fileKey, &buf, int64(buf.Len()), mimeType); err != nil {
		log.WarnContext(ctx, "upload thumbnail failed", "fileKey", fileKey, "err", err)
	}
}

// RenderView mengembalikan rendition gambar sesuai zoom dan rotasi yang
// diminta; transform identitas dilewatkan tanpa re-encode.
func (s *mediaServiceImpl) RenderView(ctx context.Context, id uint64, t imagex.Transform) ([]byte, string, error) {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", ErrImageNotFound
	}

	obj, err := minio.GetFile(ctx, image.FileKey)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = obj.Close()
	}()

	if t.IsIdentity() {
		raw, err := io.ReadAll(obj)
		if err != nil {
			return nil, "", err
		}
		return raw, image.MimeType, nil
	}

	decoded, err := imagex.Decode(obj)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err = imagex.Encode(&buf, imagex.Apply(decoded, t), image.MimeType); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), image.MimeType, nil
}

func (s *mediaServiceImpl) Download(ctx context.Context, id uint64) (io.ReadCloser, *model.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, ErrImageNotFound
	}
	obj, err := minio.GetFile(ctx, image.FileKey)
	if err != nil {
		return nil, nil, err
	}
	return obj, image, nil
}

// GetImageRefs menyiapkan referensi untuk resolusi token {{image:ID}}.
func (s *mediaServiceImpl) GetImageRefs(ctx context.Context, ids []uint64) ([]markdown.ImageRef, error) {
	if len(ids) == 0 {
		return []markdown.ImageRef{}, nil
	}
	images, err := s.imageRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	refs := make([]markdown.ImageRef, 0, len(images))
	for _, img := range images {
		refs = append(refs, markdown.ImageRef{
			ID:  strconv.FormatUint(img.ID, 10),
			URL: minio.GetPublicURL(img.FileKey),
			Alt: img.OriginalName,
		})
	}
	return refs, nil
}

func (s *mediaServiceImpl) DeleteImage(ctx context.Context, id uint64) error {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return ErrImageNotFound
	}
	if err = minio.DeleteFile(ctx, image.FileKey); err != nil {
		return err
	}
	_ = minio.DeleteFile(ctx, consts.ThumbPrefix+image.FileKey)
	return s.imageRepo.DeleteImage(ctx, id)
}
