// Package db exports analysis results to a DynamoDB table so downstream
// consumers (dashboards, alerting) can read scored messages without holding
// the engine's in-process results.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/texture/internal/clients"
	"github.com/spacesedan/texture/internal/models"
)

const defaultResultsTable = "TextureResults"

// Dynamo caps batch writes at 25 items.
const maxBatchSize = 25

func resultsTable() string {
	if table := os.Getenv("TEXTURE_RESULTS_TABLE"); table != "" {
		return table
	}
	return defaultResultsTable
}

// ExportResults batch-writes the analyses to the results table. Each item
// gets an analysis_id of "<timestamp>#<offset>" as its key.
func ExportResults(ctx context.Context, results []models.AnalysisResult) error {
	client, err := clients.GetDynamoDBClient()
	if err != nil {
		return fmt.Errorf("[DynamoDB] failed to get client: %w", err)
	}
	table := resultsTable()

	for i := 0; i < len(results); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(results) {
			end = len(results)
		}

		writeRequests := make([]types.WriteRequest, 0, end-i)
		for j, result := range results[i:end] {
			item, err := attributevalue.MarshalMap(result)
			if err != nil {
				return fmt.Errorf("[DynamoDB] failed to marshal result: %w", err)
			}
			item["analysis_id"] = &types.AttributeValueMemberS{
				Value: fmt.Sprintf("%s#%d", result.Timestamp, i+j),
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		out, err := client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: writeRequests},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] failed to batch write results: %w", err)
		}

		// Retry unprocessed items with backoff.
		retryCount := 0
		backoff := 500 * time.Millisecond
		for len(out.UnprocessedItems) > 0 && retryCount < 3 {
			time.Sleep(backoff)
			backoff *= 2
			slog.Warn("[DynamoDB] Retrying unprocessed items...",
				slog.Int("retry_attempt", retryCount+1),
				slog.Int("remaining_items", len(out.UnprocessedItems[table])))

			out, err = client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] failed to retry batch write: %w", err)
			}
			retryCount++
		}

		if len(out.UnprocessedItems) > 0 {
			return fmt.Errorf("[DynamoDB] %d results were not written after retries",
				len(out.UnprocessedItems[table]))
		}
	}

	slog.Info("[DynamoDB] Successfully exported results",
		slog.Int("count", len(results)),
		slog.String("table", table))
	return nil
}
