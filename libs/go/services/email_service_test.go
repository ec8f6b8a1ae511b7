package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEmailService_SendOrderAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockResendEmailSender(ctrl)
	svc := services.NewEmailServiceWithSender(sender, "orders@chokka.shop", "Chokka", "https://chokka.shop/admin")

	event := sampleEvent()
	event.ProductName = "Chokka Bundle"
	event.CustomerName = "<script>"

	sender.EXPECT().SendWithContext(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
			assert.Equal(t, "Chokka <orders@chokka.shop>", req.From)
			assert.Equal(t, []string{"admin@chokka.shop"}, req.To)
			assert.Equal(t, "New order #42: Chokka Bundle", req.Subject)
			assert.Contains(t, req.Html, "680 BDT")
			assert.Contains(t, req.Html, "&lt;script&gt;")
			assert.NotContains(t, req.Html, "<script>")
			assert.NotEmpty(t, req.Headers["X-Entity-Ref-ID"])
			return &resend.SendEmailResponse{Id: "em_1"}, nil
		})

	require.NoError(t, svc.SendOrderAlert(context.Background(), event, "admin@chokka.shop"))
}

func TestEmailService_SendOrderAlert_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockResendEmailSender(ctrl)
	svc := services.NewEmailServiceWithSender(sender, "orders@chokka.shop", "Chokka", "")

	err := svc.SendOrderAlert(context.Background(), sampleEvent(), "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	sender.EXPECT().SendWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))
	err = svc.SendOrderAlert(context.Background(), sampleEvent(), "admin@chokka.shop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
