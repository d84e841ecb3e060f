package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/infras/otel/mocks"
	s3Mocks "hostel/infras/s3/mocks"
	"hostel/internal/domains/snapshot/service"
	"hostel/internal/domains/store"
	"hostel/internal/domains/store/storetest"
	"hostel/shared/constant"
)

func TestSnapshotService_Export(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	uploader := s3Mocks.NewMockS3(ctrl)
	s := storetest.New(t)

	require.NoError(t, store.Set(ctx, s, constant.KeySelectedFood, "f2"))
	require.NoError(t, store.Set(ctx, s, constant.KeyUsers, []map[string]string{{"email": "asha@example.com"}}))

	uploader.EXPECT().
		UploadFileBytes(gomock.Any(), "", "snapshots", gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, dir, fileName, _ string, data []byte) (string, error) {
			assert.True(t, strings.HasSuffix(fileName, ".json"))

			var doc map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &doc))
			assert.JSONEq(t, `"f2"`, string(doc[constant.KeySelectedFood]))
			assert.JSONEq(t, `[{"email":"asha@example.com"}]`, string(doc[constant.KeyUsers]))

			return "https://cdn.example.com/" + dir + "/" + fileName, nil
		})

	svc := service.New(s, uploader, mocks.NewOtel())

	res, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Keys)
	assert.True(t, strings.HasPrefix(res.URL, "https://cdn.example.com/snapshots/"))
}

func TestSnapshotService_ExportUploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	uploader := s3Mocks.NewMockS3(ctrl)
	boom := errors.New("bucket missing")

	uploader.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", boom)

	svc := service.New(storetest.New(t), uploader, mocks.NewOtel())

	_, err := svc.Export(context.Background())
	assert.ErrorIs(t, err, boom)
}
