package extract

import (
	"context"
)

// Document is an uploaded statement file
type Document struct {
	DisplayName string
	Content     []byte
}

// TextExtractor turns raw document bytes into per-page plain text
type TextExtractor interface {
	// Extract returns the text of every page in order
	//
	// Possible errors:
	// - ErrUnreadableDocument: If no text can be recovered
	Extract(ctx context.Context, doc Document) ([]string, error)
}
