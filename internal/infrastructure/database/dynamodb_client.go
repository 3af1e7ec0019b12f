package database

import (
	"context"
	"log"

	appconfig "orderdesk/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the parsed service
// configuration. DynamoDBEndpoint points the client at a local instance
// (e.g. http://dynamodb:8000); empty means real AWS.
func ConnectDynamoDB(appCfg *appconfig.Config) *dynamodb.Client {
	cfg, err := NewDynamoDBConfig(context.Background(), appCfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfig(ctx context.Context, appCfg *appconfig.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		appCfg.AWSAccessKeyID,
		appCfg.AWSSecretAccessKey,
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(appCfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	}

	if appCfg.DynamoDBEndpoint != "" {
		endpoint := appCfg.DynamoDBEndpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
