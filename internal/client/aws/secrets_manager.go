package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/pranavc1515/email-sender/internal/logger"
)

// secretsAPI is the subset of the Secrets Manager API used by this package.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN specified by an environment variable.
// If the ARN environment variable (secretArnEnvVar) is not set or fetching fails,
// it falls back to reading the secret directly from another environment variable (fallbackEnvVar).
// Secrets stored as a JSON object with a single key resolve to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" && c.svc != nil {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar), zap.String("secretArn", secretArn))

		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			return unwrapSecret(secretArn, *result.SecretString), nil
		}

		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("secretArn", secretArn),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	} else {
		logger.Log.Debug("Secret ARN environment variable not set, falling back to direct env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
		)
	}

	if secretValue := os.Getenv(fallbackEnvVar); secretValue != "" {
		logger.Log.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return secretValue, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func unwrapSecret(secretArn, raw string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(raw), &secretJSON); err != nil {
		logger.Log.Info("Fetched secret from Secrets Manager (plain text)", zap.String("secretArn", secretArn))
		return raw
	}

	if len(secretJSON) == 1 {
		for key, value := range secretJSON {
			logger.Log.Info("Fetched secret from Secrets Manager (single-key JSON)",
				zap.String("secretArn", secretArn),
				zap.String("jsonKey", key),
			)
			return value
		}
	}

	logger.Log.Warn("Fetched secret from Secrets Manager was JSON but not single-key format, returning raw JSON string",
		zap.String("secretArn", secretArn),
		zap.Int("keyCount", len(secretJSON)),
	)
	return raw
}

// EnvSecrets resolves secrets from environment variables only. It is used
// when no AWS configuration is available.
type EnvSecrets struct{}

// GetSecretString returns the value of fallbackEnvVar.
func (EnvSecrets) GetSecretString(_ context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("secret not found using direct env var '%s' (ARN env var '%s' requires AWS configuration)", fallbackEnvVar, secretArnEnvVar)
}
