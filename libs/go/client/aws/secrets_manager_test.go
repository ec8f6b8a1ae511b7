package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/chokka/chokka-api/libs/go/logger"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type fakeSecrets struct {
	values map[string]string
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	v, ok := f.values[awssdk.ToString(in.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: awssdk.String(v)}, nil
}

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	client := &SecretsManagerClient{svc: &fakeSecrets{values: map[string]string{
		"arn:plain":  "plain-secret",
		"arn:single": `{"token":"from-json"}`,
		"arn:multi":  `{"a":"1","b":"2"}`,
	}}}

	tests := []struct {
		name     string
		arn      string
		fallback string
		want     string
		wantErr  bool
	}{
		{name: "plain text secret", arn: "arn:plain", want: "plain-secret"},
		{name: "single key json is unwrapped", arn: "arn:single", want: "from-json"},
		{name: "multi key json returned raw", arn: "arn:multi", want: `{"a":"1","b":"2"}`},
		{name: "missing secret falls back to env", arn: "arn:missing", fallback: "env-value", want: "env-value"},
		{name: "no arn uses env", fallback: "env-only", want: "env-only"},
		{name: "nothing configured", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECRET_ARN", tt.arn)
			t.Setenv("TEST_SECRET", tt.fallback)

			got, err := client.GetSecretString(context.Background(), "TEST_SECRET_ARN", "TEST_SECRET")
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, client.GetOptionalSecretString(context.Background(), "TEST_SECRET_ARN", "TEST_SECRET"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvSecretsProvider(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	var p SecretsProvider = EnvSecretsProvider{}
	got, err := p.GetSecretString(context.Background(), "TELEGRAM_BOT_TOKEN_ARN", "TELEGRAM_BOT_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "123:abc", got)
	assert.Empty(t, p.GetOptionalSecretString(context.Background(), "X_ARN", "UNSET_SECRET_FOR_TEST"))
}
