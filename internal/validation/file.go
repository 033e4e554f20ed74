package validation

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// Upload limits.
const (
	MaxPDFBytes  int64 = 10 << 20
	MaxFotoBytes int64 = 5 << 20
)

var (
	ErrFileMissing  = errors.New("no file selected")
	ErrFileTooLarge = errors.New("file too large")
	ErrFileType     = errors.New("file type not allowed")
)

// CheckFile verifies an uploaded file before it is forwarded. allowed holds MIME types; an entry
// ending in "/*" matches the whole family. The detected MIME type is returned.
func CheckFile(fh *multipart.FileHeader, maxBytes int64, allowed ...string) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", ErrFileMissing
	}
	if fh.Size > maxBytes {
		return "", errors.Wrapf(ErrFileTooLarge, "%s is %s, limit %s", fh.Filename, FormatSize(fh.Size), FormatSize(maxBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return "", errors.Wrap(err, "opening upload")
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", errors.Wrap(err, "detecting upload type")
	}
	for _, a := range allowed {
		if family, ok := strings.CutSuffix(a, "/*"); ok {
			if strings.HasPrefix(mt.String(), family+"/") {
				return mt.String(), nil
			}
			continue
		}
		if mt.Is(a) {
			return mt.String(), nil
		}
	}
	return "", errors.Wrapf(ErrFileType, "%s is %s", fh.Filename, mt.String())
}

// FormatSize renders a byte count as Bytes, KB, MB or GB with at most two decimals.
func FormatSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", size), "0"), ".")
	return s + " " + units[i]
}
