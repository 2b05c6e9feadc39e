package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateAttachmentReference builds the opaque identifier an uploaded file
// is stored under. The original extension is kept so content type can be
// recovered from the object itself.
func GenerateAttachmentReference(filenameHint string) string {
	ext := strings.ToLower(filepath.Ext(filenameHint))
	return uuid.NewString() + ext
}

// GenerateVisitReferenceID produces the display reference printed on visit
// summaries, e.g. VST-20260831-3f2a9c.
func GenerateVisitReferenceID() string {
	return fmt.Sprintf("VST-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:6])
}
