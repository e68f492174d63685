package composite

import (
	"context"
	"fmt"

	"github.com/docminder/docminder/internal/core/domain"
	"github.com/docminder/docminder/internal/core/ports"
)

// Extractor routes a document to the extractor for its file type. Image and
// docx uploads are accepted but have no text extraction; they come back as
// empty text and the document is classified from its filename alone.
type Extractor struct {
	byType map[string]ports.TextExtractor
}

func NewExtractor(plain, pdf, xlsx ports.TextExtractor) *Extractor {
	return &Extractor{byType: map[string]ports.TextExtractor{
		"txt":  plain,
		"pdf":  pdf,
		"xlsx": xlsx,
	}}
}

func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (string, error) {
	if ext, ok := e.byType[doc.FileType]; ok {
		return ext.Extract(ctx, doc)
	}
	switch doc.FileType {
	case "png", "jpg", "jpeg", "docx":
		return "", nil
	}
	return "", fmt.Errorf("unsupported file type %q", doc.FileType)
}
