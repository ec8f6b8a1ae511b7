package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// SecretsProvider resolves a secret either from Secrets Manager (ARN held in
// arnEnvVar) or from a plain environment variable.
type SecretsProvider interface {
	GetSecretString(ctx context.Context, arnEnvVar, fallbackEnvVar string) (string, error)
	GetOptionalSecretString(ctx context.Context, arnEnvVar, fallbackEnvVar string) string
}

type secretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretValueGetter
}

// NewSecretsManagerClient creates a client from the default AWS configuration chain
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

// GetSecretString fetches a secret by the ARN stored in arnEnvVar, falling
// back to the value of fallbackEnvVar. Secrets stored as a single-key JSON
// object are unwrapped to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, arnEnvVar, fallbackEnvVar string) (string, error) {
	if secretArn := os.Getenv(arnEnvVar); secretArn != "" && c.svc != nil {
		value, err := c.fetch(ctx, secretArn)
		if err == nil {
			return value, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arn_env_var", arnEnvVar),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret value from environment variable", zap.String("env_var", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", arnEnvVar, fallbackEnvVar)
}

// GetOptionalSecretString is GetSecretString for integrations that may be
// left unconfigured. It returns "" instead of an error.
func (c *SecretsManagerClient) GetOptionalSecretString(ctx context.Context, arnEnvVar, fallbackEnvVar string) string {
	value, err := c.GetSecretString(ctx, arnEnvVar, fallbackEnvVar)
	if err != nil {
		return ""
	}
	return value
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}

	raw := *result.SecretString
	var single map[string]string
	if err := json.Unmarshal([]byte(raw), &single); err == nil && len(single) == 1 {
		for _, v := range single {
			return v, nil
		}
	}
	return raw, nil
}

// EnvSecretsProvider reads secrets from environment variables only. Used
// when no AWS configuration is available, e.g. local development.
type EnvSecretsProvider struct{}

// GetSecretString implements SecretsProvider
func (EnvSecretsProvider) GetSecretString(_ context.Context, arnEnvVar, fallbackEnvVar string) (string, error) {
	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("secret not found in env var '%s'", fallbackEnvVar)
}

// GetOptionalSecretString implements SecretsProvider
func (EnvSecretsProvider) GetOptionalSecretString(_ context.Context, _, fallbackEnvVar string) string {
	return os.Getenv(fallbackEnvVar)
}
