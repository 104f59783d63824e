package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/netx"
)

// uploadFn is a seam for tests.
var uploadFn = netx.UploadToPresignedURL

// CloudExportService stores the export document in the account's object
// storage through a presigned URL handed out by the backend.
type CloudExportService struct {
	sync       *SyncService
	client     client.Client
	session    *Session
	httpClient *http.Client
}

func NewCloudExportService(sync *SyncService, c client.Client, session *Session, httpClient *http.Client) *CloudExportService {
	return &CloudExportService{sync: sync, client: c, session: session, httpClient: httpClient}
}

// Upload builds the export and returns the object key it was stored under.
func (s *CloudExportService) Upload(ctx context.Context) (string, error) {
	if !s.session.SignedIn() {
		return "", common.ErrAuthRequired
	}

	doc, err := s.sync.ExportAllAsJSON(ctx)
	if err != nil {
		return "", err
	}

	key, url, err := s.client.GetExportUploadURL(ctx)
	if err != nil {
		return "", remoteError(err)
	}

	if err := uploadFn(ctx, s.httpClient, url, doc, "application/json"); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrRemoteUnavailable, err)
	}
	return key, nil
}
