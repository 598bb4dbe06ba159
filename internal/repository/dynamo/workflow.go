package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/dtroode/workflow-tracker-server/internal/model"
)

var _ model.WorkflowStore = (*WorkflowRepository)(nil)

type workflowItem struct {
	ID        string    `dynamodbav:"id"`
	Email     string    `dynamodbav:"email"`
	Entry     string    `dynamodbav:"entry"`
	Timestamp time.Time `dynamodbav:"timestamp"`
}

// WorkflowRepository stores workflow entries partitioned by owner email.
type WorkflowRepository struct {
	client    Client
	tableName string
}

func NewWorkflowRepository(client Client, tableName string) *WorkflowRepository {
	return &WorkflowRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *WorkflowRepository) Create(ctx context.Context, entry model.WorkflowEntry) (model.WorkflowEntry, error) {
	item, err := attributevalue.MarshalMap(workflowItem{
		ID:        entry.ID.String(),
		Email:     entry.Email,
		Entry:     entry.Entry,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		return model.WorkflowEntry{}, fmt.Errorf("failed to marshal workflow entry: %w", err)
	}

	item[AttrPK] = &types.AttributeValueMemberS{Value: workflowPK(entry.Email)}
	item[AttrSK] = &types.AttributeValueMemberS{Value: workflowSK(entry.Timestamp, entry.ID.String())}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: EntityTypeWorkflow}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return model.WorkflowEntry{}, fmt.Errorf("failed to create workflow entry: %w", err)
	}

	return entry, nil
}

// GetByEmail queries the owner's partition in descending sort key order.
func (r *WorkflowRepository) GetByEmail(ctx context.Context, email string) ([]model.WorkflowEntry, error) {
	entries := []model.WorkflowEntry{}
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		queryInput := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: workflowPK(email)},
				":sk": &types.AttributeValueMemberS{Value: workflowPrefix()},
			},
			ScanIndexForward: aws.Bool(false),
		}

		if lastEvaluatedKey != nil {
			queryInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := r.client.Query(ctx, queryInput)
		if err != nil {
			return nil, fmt.Errorf("failed to query workflow entries: %w", err)
		}

		for _, raw := range result.Items {
			var item workflowItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, fmt.Errorf("failed to unmarshal workflow entry: %w", err)
			}

			id, err := uuid.Parse(item.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to parse workflow entry id: %w", err)
			}

			entries = append(entries, model.WorkflowEntry{
				ID:        id,
				Email:     item.Email,
				Entry:     item.Entry,
				Timestamp: item.Timestamp,
			})
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return entries, nil
}
