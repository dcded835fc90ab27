package service

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"Plaza/config"
	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/snowflake"
	"Plaza/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	// UploadImage 上传图片附件，返回附件 ID 和访问地址
	UploadImage(ctx context.Context, userID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error)

	// DownloadReader 下载为流
	DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// SignURL 生成临时访问 URL（秒）
	SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error)
}

type UploadService struct {
	Client        *oss.Client
	BucketName    string
	CdnHost       string
	AttachmentDAO *dao.AttachmentDAO
}

func NewUploadService(cfg *config.OssConfig, attachmentDAO *dao.AttachmentDAO) IUploadService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &UploadService{
		Client:        oss.NewClient(ossCfg),
		BucketName:    cfg.Bucket,
		CdnHost:       cfg.CdnHost,
		AttachmentDAO: attachmentDAO,
	}
}

func (s *UploadService) UploadImage(ctx context.Context, userID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 要能 Seek，否则无法在读头校验/取尺寸后再上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true}
	if !allowedFmt[format] {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("plaza/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	attachment := models.Attachment{
		ID:        snowflake.GenID(),
		UserID:    userID,
		OssKey:    objectKey,
		FileName:  header.Filename,
		MimeType:  contentType,
		Size:      header.Size,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Status:    models.AttachmentUploaded,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.AttachmentDAO.Create(ctx, &attachment); err != nil {
		return nil, err
	}

	return &types.UploadImageResp{
		AttachmentID: attachment.ID,
		Url:          s.CdnHost + "/" + objectKey,
		Width:        cfg.Width,
		Height:       cfg.Height,
	}, nil
}

func (s *UploadService) DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (s *UploadService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

func (s *UploadService) SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error) {
	out, err := s.Client.Presign(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(time.Duration(expireSeconds)*time.Second))
	if err != nil {
		return "", err
	}
	return out.URL, nil
}
