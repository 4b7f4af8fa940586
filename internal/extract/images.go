package extract

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io"
	"log/slog"
	"path"
	"strings"
)

// Image is one embedded media entry pulled out of the document archive.
type Image struct {
	MIMEType string
	Data     []byte
}

// DataURI renders the image as a self-contained data URI.
func (im Image) DataURI() string {
	return "data:" + im.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(im.Data)
}

// ExtractImages scans the docx archive for entries under word/media
// and returns them keyed by their archive path. Images are a
// nice-to-have: any failure yields an empty map, never an error.
func ExtractImages(data []byte) map[string]Image {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		slog.Debug("extract: document is not a readable archive, skipping images", "error", err)
		return map[string]Image{}
	}

	images := make(map[string]Image)
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "word/media/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			slog.Debug("extract: failed to open media entry", "path", f.Name, "error", err)
			continue
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			slog.Debug("extract: failed to read media entry", "path", f.Name, "error", err)
			continue
		}
		images[f.Name] = Image{
			MIMEType: mimeFromExt(path.Ext(f.Name)),
			Data:     raw,
		}
	}
	return images
}

// resolveImage maps a document relationship id to an extracted image.
func resolveImage(rels map[string]string, images map[string]Image, relID string) (Image, bool) {
	target, ok := rels[relID]
	if !ok {
		return Image{}, false
	}
	key := path.Clean("word/" + strings.ReplaceAll(target, "\\", "/"))
	im, ok := images[key]
	return im, ok
}

// mimeFromExt returns the MIME type for common image extensions.
func mimeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
