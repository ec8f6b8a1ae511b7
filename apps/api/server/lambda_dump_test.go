package server

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
)

func TestDumpLambdaRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        events.APIGatewayProxyRequest
		hidden     []string
		visible    []string
		headerKept string
	}{
		{
			name: "bearer token masked in both header maps",
			req: events.APIGatewayProxyRequest{
				Path:              "/api/orders",
				Headers:           map[string]string{"authorization": "Bearer eyJhbGciOi.secret", "Content-Type": "application/json"},
				MultiValueHeaders: map[string][]string{"Authorization": {"Bearer eyJhbGciOi.secret"}},
			},
			hidden:     []string{"eyJhbGciOi.secret"},
			visible:    []string{"/api/orders", "application/json", redacted},
			headerKept: "Bearer eyJhbGciOi.secret",
		},
		{
			name: "login body masked",
			req: events.APIGatewayProxyRequest{
				Path: "/api/admin/login",
				Body: `{"username":"admin","password":"hunter2"}`,
			},
			hidden:  []string{"hunter2"},
			visible: []string{redacted},
		},
		{
			name: "other bodies kept",
			req: events.APIGatewayProxyRequest{
				Path: "/api/create-order",
				Body: `{"customer_name":"Rahim"}`,
			},
			visible: []string{"Rahim"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DumpLambdaRequest(tt.req)
			for _, s := range tt.hidden {
				assert.NotContains(t, out, s)
			}
			for _, s := range tt.visible {
				assert.Contains(t, out, s)
			}
			if tt.headerKept != "" {
				assert.Equal(t, tt.headerKept, tt.req.Headers["authorization"])
				assert.Equal(t, tt.headerKept, tt.req.MultiValueHeaders["Authorization"][0])
			}
		})
	}
}
