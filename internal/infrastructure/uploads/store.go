// Package uploads stores receipt images on local disk. Only a small
// whitelist of image formats is accepted and files are renamed to
// random identifiers so uploads can never collide or traverse paths.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"expensetracker/internal/shared/apperr"
)

// MaxFileSize caps a single receipt upload at 5 MB.
const MaxFileSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// StoredFile describes a file that was written to disk.
type StoredFile struct {
	FileName string // original client-supplied name
	FilePath string // path on disk, relative to the working directory
	FileType string // declared MIME type
	FileSize int64
}

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save validates and writes an uploaded file. Both the file extension
// and the declared content type must be on the image whitelist, and the
// declared size must not exceed MaxFileSize.
func (s *Store) Save(header *multipart.FileHeader) (*StoredFile, error) {
	if err := validate(header); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	destPath := filepath.Join(s.dir, uuid.NewString()+ext)

	dst, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("writing upload file: %w", err)
	}
	// The declared size can lie; reject anything that actually streamed
	// past the cap.
	if written > MaxFileSize {
		os.Remove(destPath)
		return nil, apperr.BadRequest("file too large; maximum size is 5MB")
	}

	return &StoredFile{
		FileName: header.Filename,
		FilePath: destPath,
		FileType: header.Header.Get("Content-Type"),
		FileSize: written,
	}, nil
}

// Remove deletes a previously stored file. Missing files are not an error.
func (s *Store) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing upload file: %w", err)
	}
	return nil
}

func validate(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return apperr.BadRequest("invalid file type; only jpeg, jpg, png and gif images are allowed")
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedMIMETypes[contentType] {
		return apperr.BadRequest("invalid file type; only jpeg, jpg, png and gif images are allowed")
	}

	if header.Size > MaxFileSize {
		return apperr.BadRequest("file too large; maximum size is 5MB")
	}
	return nil
}
