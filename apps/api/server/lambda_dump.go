package server

import (
	"strings"

	"github.com/chokka/chokka-api/apps/api/constants"

	"github.com/aws/aws-lambda-go/events"
	"github.com/davecgh/go-spew/spew"
)

const redacted = "[REDACTED]"

// DumpLambdaRequest renders a gateway event for debug logs with the bearer
// token and login credentials masked. The event itself is not modified.
func DumpLambdaRequest(req events.APIGatewayProxyRequest) string {
	req.Headers = redactHeaders(req.Headers)
	req.MultiValueHeaders = redactMultiValueHeaders(req.MultiValueHeaders)
	if strings.TrimSuffix(req.Path, "/") == constants.APIPrefix+"/admin/login" && req.Body != "" {
		req.Body = redacted
	}
	return spew.Sdump(req)
}

func isSensitiveHeader(name string) bool {
	return strings.EqualFold(name, "Authorization") || strings.EqualFold(name, "Cookie")
}

func redactHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if isSensitiveHeader(k) {
			v = redacted
		}
		out[k] = v
	}
	return out
}

func redactMultiValueHeaders(headers map[string][]string) map[string][]string {
	if headers == nil {
		return nil
	}
	out := make(map[string][]string, len(headers))
	for k, v := range headers {
		if isSensitiveHeader(k) {
			v = []string{redacted}
		}
		out[k] = v
	}
	return out
}
