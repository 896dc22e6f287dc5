package adapters

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"beautycrm_backend/internal/adapters/storage"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/ports"
)

// ImportArchiver stores raw bulk-import payloads in object storage under
// imports/<kind>/.
type ImportArchiver struct {
	storage storage.StorageService
	bucket  string
	now     func() time.Time
}

func NewImportArchiver(svc storage.StorageService, bucket string) *ImportArchiver {
	return &ImportArchiver{storage: svc, bucket: bucket, now: time.Now}
}

func (a *ImportArchiver) ArchiveImport(ctx context.Context, kind domain.Kind, payload []byte) (string, error) {
	folder := "imports/" + string(kind)
	name := a.now().UTC().Format("20060102T150405Z") + ".json"

	key, err := a.storage.UploadFile(ctx, a.bucket, folder, name, "application/json", bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("archive %s import: %w", kind, err)
	}
	return key, nil
}

var _ ports.ImportArchiver = (*ImportArchiver)(nil)
