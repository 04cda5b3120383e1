package clients

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	awsCfg   aws.Config
	awsErr   error
	awsOnce  sync.Once
	endpoint string
)

func GetAWSConfig() (aws.Config, error) {
	awsOnce.Do(func() {
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = "us-west-2"
		}
		endpoint = os.Getenv("AWS_ENDPOINT")

		slog.Info("[AWSClient] Initializing AWS Config...",
			slog.String("region", region))

		awsCfg, awsErr = config.LoadDefaultConfig(context.Background(),
			config.WithRegion(region))
	})
	return awsCfg, awsErr
}

func GetDynamoDBClient() (*dynamodb.Client, error) {
	cfg, err := GetAWSConfig()
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}
