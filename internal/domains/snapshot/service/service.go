package service

import (
	"context"
	"encoding/json"
	"fmt"

	"hostel/infras/otel"
	"hostel/infras/s3"
	"hostel/internal/domains/store"
	"hostel/shared/constant"
	"hostel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	snapshotDirectory  = "snapshots"
	snapshotNameLayout = "20060102T150405.000Z"
)

type ExportResponse struct {
	URL  string `json:"url"`
	Keys int    `json:"keys"`
}

// Snapshot copies the whole store to object storage.
type Snapshot interface {
	Export(ctx context.Context) (ExportResponse, error)
}

type serviceImpl struct {
	store store.Store
	s3    s3.S3
	otel  otel.Otel
}

func New(s store.Store, s3 s3.S3, otel otel.Otel) Snapshot {
	return &serviceImpl{
		store: s,
		s3:    s3,
		otel:  otel,
	}
}

// Export uploads every stored key as one JSON object and returns its URL.
func (s *serviceImpl) Export(ctx context.Context) (res ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".snapshot.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	values, err := store.Snapshot(ctx, s.store)
	if err != nil {
		log.Error().Err(err).Msg("failed to read store snapshot")

		return res, fmt.Errorf("failed to read store snapshot: %w", err)
	}

	data, err := json.Marshal(values)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode store snapshot")

		return res, fmt.Errorf("failed to encode store snapshot: %w", err)
	}

	fileName := timezone.Now().UTC().Format(snapshotNameLayout) + ".json"

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, snapshotDirectory, fileName, constant.ContentTypeJSON, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload store snapshot")

		return res, fmt.Errorf("failed to upload store snapshot: %w", err)
	}

	log.Info().Str("url", url).Int("keys", len(values)).Msg("store snapshot exported")

	return ExportResponse{
		URL:  url,
		Keys: len(values),
	}, nil
}
