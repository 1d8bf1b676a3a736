package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

const (
	sourceResultsTable   = "SourceResults"
	analysisResultsTable = "AnalysisResults"
	resultLinksTable     = "ResultLinks"

	// Persisted analyses expire after a day; the dashboard works from
	// its own aggregates beyond that.
	resultTTL = 24 * time.Hour
)

// NewDynamoDBClient builds a client from the default AWS config,
// honoring AWS_ENDPOINT for local DynamoDB.
func NewDynamoDBClient(ctx context.Context) (*dynamodb.Client, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-west-2"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] failed to load AWS config: %w", err)
	}

	endpoint := os.Getenv("AWS_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// DynamoDBStore implements SourceResultStore and AnalysisResultStore
// on DynamoDB tables.
type DynamoDBStore struct {
	client *dynamodb.Client
}

func NewDynamoDBStore(client *dynamodb.Client) *DynamoDBStore {
	return &DynamoDBStore{client: client}
}

func (s *DynamoDBStore) FetchResultsForJob(ctx context.Context, jobID string) ([]models.SourceResult, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(sourceResultsTable),
		FilterExpression: aws.String("job_id = :job"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job": &types.AttributeValueMemberS{Value: jobID},
		},
	}

	var results []models.SourceResult
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] scan for source results failed: %w", err)
		}
		var page []models.SourceResult
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("[DynamoDB] unable to unmarshal source result page: %w", err)
		}
		results = append(results, page...)
	}

	slog.Info("[DynamoDB] Fetched source results",
		slog.String("job_id", jobID),
		slog.Int("count", len(results)))
	return results, nil
}

func (s *DynamoDBStore) Save(ctx context.Context, result models.AnalysisResult) (string, error) {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}

	item, err := attributevalue.MarshalMap(result)
	if err != nil {
		return "", fmt.Errorf("[DynamoDB] failed to marshal analysis result: %w", err)
	}
	item["ttl"] = &types.AttributeValueMemberN{
		Value: fmt.Sprintf("%d", time.Now().Add(resultTTL).Unix()),
	}

	if err := s.putWithRetry(ctx, analysisResultsTable, item); err != nil {
		return "", err
	}
	return result.ID, nil
}

func (s *DynamoDBStore) LinkResults(ctx context.Context, sourceResultID string, analysisResultIDs []string) error {
	ids, err := attributevalue.Marshal(analysisResultIDs)
	if err != nil {
		return fmt.Errorf("[DynamoDB] failed to marshal result links: %w", err)
	}

	item := map[string]types.AttributeValue{
		"source_result_id":    &types.AttributeValueMemberS{Value: sourceResultID},
		"analysis_result_ids": ids,
		"linked_at":           &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())},
	}
	return s.putWithRetry(ctx, resultLinksTable, item)
}

// putWithRetry retries throttled writes with exponential backoff, the
// same way result batches are persisted elsewhere in the system.
func (s *DynamoDBStore) putWithRetry(ctx context.Context, table string, item map[string]types.AttributeValue) error {
	backoff := 500 * time.Millisecond
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(table),
			Item:      item,
		})
		if err == nil {
			return nil
		}
		slog.Warn("[DynamoDB] PutItem failed, retrying...",
			slog.String("table", table),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("[DynamoDB] PutItem to %s failed after retries: %w", table, err)
}
