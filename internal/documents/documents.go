// Package documents reads inspection PDFs: plain text for the general report
// and one rendered PNG per page for the thermal report.
package documents

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/encoding"
	"github.com/JaimeStill/document-context/pkg/image"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/ddr/pkg/formatting"
)

// Page is one rendered page image. Number is 1-based.
type Page struct {
	Number    int
	ImagePath string
	Size      int64
}

// System defines the PDF operations the workflow depends on.
type System interface {
	// Text returns the concatenated text of all pages in page order.
	// A PDF with no extractable text yields an empty string.
	Text(ctx context.Context, path string) (string, error)
	// Pages renders every page of path to a PNG in dir, in page order.
	Pages(ctx context.Context, path, dir string) ([]Page, error)
	// Encode returns the page image as a data URI.
	Encode(page Page) (string, error)
}

type system struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a documents system from a finalized Config.
func New(cfg *Config, logger *slog.Logger) System {
	return &system{
		cfg:    *cfg,
		logger: logger.With("system", "documents"),
	}
}

func (s *system) Text(ctx context.Context, path string) (string, error) {
	pageCount, err := PageCount(path)
	if err != nil {
		return "", err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %s: extract text: %w", ErrUnreadable, path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("%w: %s: read text: %w", ErrUnreadable, path, err)
	}

	s.logger.InfoContext(
		ctx, "text extracted",
		"path", path,
		"page_count", pageCount,
		"chars", buf.Len(),
	)

	return buf.String(), nil
}

func (s *system) Pages(ctx context.Context, path, dir string) ([]Page, error) {
	if _, err := PageCount(path); err != nil {
		return nil, err
	}

	pdfDoc, err := document.OpenPDF(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	defer pdfDoc.Close()

	renderer, err := image.NewImageMagickRenderer(s.imageConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: create renderer: %w", ErrRenderFailed, err)
	}

	allPages, err := pdfDoc.ExtractAllPages()
	if err != nil {
		return nil, fmt.Errorf("%w: extract pages: %w", ErrRenderFailed, err)
	}

	pageCount := len(allPages)
	pages := make([]Page, pageCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renderWorkerCount(pageCount))

	for i, page := range allPages {
		pageNum := i + 1
		imgPath := filepath.Join(dir, fmt.Sprintf("page-%d.png", pageNum))

		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			data, err := page.ToImage(renderer, nil)
			if err != nil {
				return fmt.Errorf("render page %d: %w", pageNum, err)
			}

			if err := os.WriteFile(imgPath, data, 0600); err != nil {
				return fmt.Errorf("write page %d image: %w", pageNum, err)
			}

			pages[i] = Page{
				Number:    pageNum,
				ImagePath: imgPath,
				Size:      int64(len(data)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	var total int64
	for _, p := range pages {
		total += p.Size
	}

	s.logger.InfoContext(
		ctx, "pages rendered",
		"path", path,
		"page_count", pageCount,
		"dpi", s.cfg.DPI,
		"total_size", formatting.FormatBytes(total, 1),
	)

	return pages, nil
}

func (s *system) Encode(page Page) (string, error) {
	data, err := os.ReadFile(page.ImagePath)
	if err != nil {
		return "", fmt.Errorf("read page %d image: %w", page.Number, err)
	}

	if limit := s.cfg.MaxImageSizeBytes(); int64(len(data)) > limit {
		return "", fmt.Errorf(
			"%w: page %d is %s, limit %s",
			ErrImageTooLarge,
			page.Number,
			formatting.FormatBytes(int64(len(data)), 1),
			s.cfg.MaxImageSize,
		)
	}

	dataURI, err := encoding.EncodeImageDataURI(data, document.PNG)
	if err != nil {
		return "", fmt.Errorf("encode page %d image: %w", page.Number, err)
	}

	return dataURI, nil
}

func (s *system) imageConfig() config.ImageConfig {
	return config.ImageConfig{
		Format: "png",
		DPI:    s.cfg.DPI,
		Options: map[string]any{
			"background": "white",
		},
	}
}

// PageCount opens path and returns its page count, failing with
// ErrUnreadable when the file is missing or not a valid PDF.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}

	return count, nil
}

func renderWorkerCount(pageCount int) int {
	return max(min(runtime.NumCPU(), pageCount), 1)
}
