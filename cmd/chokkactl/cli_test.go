package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/types/business"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		password string
		wantErr  string
	}{
		{name: "from argument", args: []string{"s3cret"}, password: "s3cret"},
		{name: "from stdin", stdin: "hunter2\n", password: "hunter2"},
		{name: "stdin without newline", stdin: "hunter2", password: "hunter2"},
		{name: "empty stdin", stdin: "", wantErr: "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetOut(&out)

			err := runHashPassword(cmd, tt.args)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			hash := strings.TrimSpace(out.String())
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
		})
	}
}

func TestSyncCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	courier := mocks.NewMockCourierService(ctrl)

	courier.EXPECT().SyncAll(gomock.Any()).Return(&business.SyncSummary{
		Updated: 1,
		Total:   3,
		Errors:  []business.SyncError{{OrderID: 12, Error: "status lookup failed"}},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, syncCourier(context.Background(), courier, &out))
	assert.Equal(t, "Checked 3 orders, updated 1\n  order #12: status lookup failed\n", out.String())

	courier.EXPECT().SyncAll(gomock.Any()).Return(nil, errors.New("db down"))
	assert.ErrorContains(t, syncCourier(context.Background(), courier, &out), "sync failed")
}

func TestListLowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := mocks.NewMockInventoryService(ctrl)

	inventory.EXPECT().ListLowStock(gomock.Any()).Return([]db.Inventory{
		{ID: 4, Name: "Syndicate boxes", Category: "packaging", Stock: 3, ReorderLevel: 10},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, listLowStock(context.Background(), inventory, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Syndicate boxes")
	assert.Contains(t, lines[1], "packaging")

	inventory.EXPECT().ListLowStock(gomock.Any()).Return([]db.Inventory{}, nil)
	out.Reset()
	require.NoError(t, listLowStock(context.Background(), inventory, &out))
	assert.Equal(t, "All stock above reorder levels\n", out.String())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"sync", "low-stock", "hash-password", "serve"} {
		assert.True(t, names[want], want)
	}
}
