package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/repository"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // registers the webp decoder for thumbnails
)

const (
	MaxFileSize    = 10 * 1024 * 1024 // 10 MB
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"

	thumbnailWidth = 300
)

// allowedMimeTypes lists the image formats accepted for avatars and
// post attachments.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service saves uploaded images to local disk and records them in the
// database. Files live under uploads/YYYY/MM/DD/ and are served from the
// static route.
type Service struct {
	repo       MediaRepository
	posts      PostReader
	baseDir    string
	staticBase string
}

func NewService(repo MediaRepository, posts PostReader, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{repo: repo, posts: posts, baseDir: baseDir, staticBase: staticBase}
}

// Upload validates the file, writes it to disk and records the media row.
// For post attachments the caller must own the target post.
func (s *Service) Upload(ctx context.Context, userID int64, req UploadRequest, fh *multipart.FileHeader) (*domain.Media, error) {
	mediaType := domain.MediaType(req.Type)
	switch mediaType {
	case domain.MediaTypeAvatar, domain.MediaTypePost:
	default:
		return nil, ErrInvalidType
	}

	var postID *int64
	if mediaType == domain.MediaTypePost {
		if req.PostID == nil {
			return nil, ErrPostNotFound
		}
		post, err := s.posts.GetByID(ctx, *req.PostID)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, ErrPostNotFound
			}
			return nil, err
		}
		if post.AuthorID != userID {
			return nil, ErrNotOwner
		}
		postID = req.PostID
	}

	m, err := s.save(ctx, userID, fh)
	if err != nil {
		return nil, err
	}
	m.Type = mediaType
	m.PostID = postID
	m.Alt = req.Alt

	// Post attachments carry a resized thumbnail next to the original.
	if mediaType == domain.MediaTypePost {
		if err := s.generateThumbnail(m); err != nil {
			s.removeFiles(m)
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.removeFiles(m)
		return nil, err
	}
	return m, nil
}

// UploadAvatar is the narrow path used by the profile module.
func (s *Service) UploadAvatar(ctx context.Context, userID int64, fh *multipart.FileHeader) (*domain.Media, error) {
	m, err := s.save(ctx, userID, fh)
	if err != nil {
		return nil, err
	}
	m.Type = domain.MediaTypeAvatar

	if err := s.repo.Create(ctx, m); err != nil {
		s.removeFiles(m)
		return nil, err
	}
	return m, nil
}

// Delete removes the physical file and the record. Only the uploader may
// delete their media.
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrMediaNotFound
		}
		return err
	}
	if m.UploadedBy != userID {
		return ErrNotOwner
	}

	s.removeFiles(m)

	return s.repo.Delete(ctx, id)
}

// generateThumbnail decodes the stored original, resizes it to a fixed
// width and writes the result as a jpeg beside it.
func (s *Service) generateThumbnail(m *domain.Media) error {
	srcPath := filepath.Join(s.baseDir, m.FilePath)
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("decode image for thumbnail: %w", err)
	}
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	relThumb := strings.TrimSuffix(m.FilePath, filepath.Ext(m.FilePath)) + "_thumb.jpg"
	if err := imaging.Save(thumb, filepath.Join(s.baseDir, relThumb), imaging.JPEGQuality(80)); err != nil {
		return fmt.Errorf("write thumbnail: %w", err)
	}

	m.ThumbnailPath = relThumb
	m.Thumbnail = s.staticBase + "/" + strings.ReplaceAll(relThumb, "\\", "/")
	return nil
}

// removeFiles deletes the original and its thumbnail, if any. Files may
// already be gone; the record is authoritative.
func (s *Service) removeFiles(m *domain.Media) {
	_ = os.Remove(filepath.Join(s.baseDir, m.FilePath))
	if m.ThumbnailPath != "" {
		_ = os.Remove(filepath.Join(s.baseDir, m.ThumbnailPath))
	}
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Media, error) {
	return s.repo.ListByUser(ctx, userID)
}

// save performs the disk write shared by every upload path: size and MIME
// checks, date-partitioned directory, uuid filename.
func (s *Service) save(_ context.Context, userID int64, fh *multipart.FileHeader) (*domain.Media, error) {
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	// Sniff the real content type from the first 512 bytes.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !allowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	id := uuid.New().String()
	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := id + ext

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	fileURL := s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/")

	return &domain.Media{
		ID:         id,
		URL:        fileURL,
		UploadedBy: userID,
		FilePath:   relPath,
		MimeType:   mimeType,
		Size:       fh.Size,
		CreatedAt:  now,
	}, nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
