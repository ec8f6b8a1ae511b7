package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/client/telegram"
	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleEvent() events.OrderEvent {
	return events.OrderEvent{
		Type:          "order.created",
		OrderID:       42,
		ProductID:     3,
		Quantity:      1,
		CustomerName:  "Rahim_Uddin",
		CustomerPhone: "+8801711111111",
		City:          "Dhaka",
		Address:       "Dhanmondi",
		Total:         decimal.NewFromInt(680),
	}
}

func notifyCatalog(chats ...string) *config.Catalog {
	cat := config.DefaultCatalog()
	cat.TelegramChatIDs = chats
	cat.AdminPanelURL = "https://chokka.shop/admin"
	return cat
}

func TestFormatOrderMessage(t *testing.T) {
	event := sampleEvent()
	event.ProductName = "Chokka Bundle"

	got := services.FormatOrderMessage(event, "https://chokka.shop/admin")

	want := "💰 *NEW ORDER RECEIVED!* 💰\n\n" +
		"📦 *Item:* Chokka Bundle\n" +
		"👤 *Name:* Rahim\\_Uddin\n" +
		"📞 *Phone:* +8801711111111\n" +
		"🏙️ *City:* Dhaka\n" +
		"💵 *Total:* 680 BDT\n\n" +
		"👉 [Open Admin Panel](https://chokka.shop/admin)"
	assert.Equal(t, want, got)
}

func TestNotificationService_NotifyOrderCreated(t *testing.T) {
	tests := []struct {
		name      string
		chats     []string
		withEmail bool
		setup     func(tg *mocks.MockTelegramClient, email *mocks.MockEmailService)
		wantErr   error
	}{
		{
			name:  "sends to every chat",
			chats: []string{"111", "222"},
			setup: func(tg *mocks.MockTelegramClient, _ *mocks.MockEmailService) {
				tg.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req telegram.SendMessageRequest) error {
						assert.Equal(t, telegram.ParseModeMarkdown, req.ParseMode)
						assert.Contains(t, req.Text, "Chokka Bundle")
						return nil
					}).Times(2)
			},
		},
		{
			name:  "one failing chat does not stop the others",
			chats: []string{"111", "222"},
			setup: func(tg *mocks.MockTelegramClient, _ *mocks.MockEmailService) {
				gomock.InOrder(
					tg.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errors.New("chat not found")),
					tg.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name:  "all chats failing is an error",
			chats: []string{"111"},
			setup: func(tg *mocks.MockTelegramClient, _ *mocks.MockEmailService) {
				tg.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			wantErr: services.ErrNoNotificationDelivered,
		},
		{
			name:      "email delivers when telegram fails",
			chats:     []string{"111"},
			withEmail: true,
			setup: func(tg *mocks.MockTelegramClient, email *mocks.MockEmailService) {
				tg.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
				email.EXPECT().SendOrderAlert(gomock.Any(), gomock.Any(), "admin@chokka.shop").Return(nil)
			},
		},
		{
			name:  "no channels configured",
			chats: nil,
			setup: func(*mocks.MockTelegramClient, *mocks.MockEmailService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tg := mocks.NewMockTelegramClient(ctrl)
			email := mocks.NewMockEmailService(ctrl)
			tt.setup(tg, email)

			var emailSvc interfaces.EmailService
			to := ""
			if tt.withEmail {
				emailSvc = email
				to = "admin@chokka.shop"
			}
			svc := services.NewNotificationService(tg, emailSvc, notifyCatalog(tt.chats...), to)

			err := svc.NotifyOrderCreated(context.Background(), sampleEvent())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
