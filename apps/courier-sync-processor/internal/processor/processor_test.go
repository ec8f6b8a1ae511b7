package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/types/business"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCourierSyncProcessor_HandleRequest(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(m *mocks.MockCourierService)
		wantErr     string
		wantUpdated int
	}{
		{
			name: "reports summary",
			setupMock: func(m *mocks.MockCourierService) {
				m.EXPECT().SyncAll(gomock.Any()).Return(&business.SyncSummary{
					Updated: 2,
					Total:   5,
					Errors:  []business.SyncError{{OrderID: 4, Error: "status lookup failed"}},
				}, nil)
			},
			wantUpdated: 2,
		},
		{
			name: "nothing to sync",
			setupMock: func(m *mocks.MockCourierService) {
				m.EXPECT().SyncAll(gomock.Any()).Return(&business.SyncSummary{Errors: []business.SyncError{}}, nil)
			},
		},
		{
			name: "pass fails",
			setupMock: func(m *mocks.MockCourierService) {
				m.EXPECT().SyncAll(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr: "error syncing courier statuses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			courier := mocks.NewMockCourierService(ctrl)
			tt.setupMock(courier)

			p := NewCourierSyncProcessor(courier, zap.NewNop())
			summary, err := p.HandleRequest(context.Background())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, summary)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUpdated, summary.Updated)
		})
	}
}
