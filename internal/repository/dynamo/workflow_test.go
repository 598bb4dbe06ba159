package dynamo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/workflow-tracker-server/internal/model"
)

func storedEntry(t *testing.T, entry model.WorkflowEntry) map[string]types.AttributeValue {
	t.Helper()

	item, err := attributevalue.MarshalMap(workflowItem{
		ID:        entry.ID.String(),
		Email:     entry.Email,
		Entry:     entry.Entry,
		Timestamp: entry.Timestamp,
	})
	require.NoError(t, err)
	return item
}

func TestWorkflowRepository_Create(t *testing.T) {
	var captured *dynamodb.PutItemInput
	client := &mockClient{
		putItemFunc: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			captured = params
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	repo := NewWorkflowRepository(client, "test-table")

	entry := model.WorkflowEntry{
		ID:        uuid.New(),
		Email:     "ada@example.com",
		Entry:     "reviewed PR",
		Timestamp: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}
	saved, err := repo.Create(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, entry, saved)

	require.NotNil(t, captured)
	assert.Nil(t, captured.ConditionExpression)
	assert.Equal(t, workflowPK("ada@example.com"), captured.Item[AttrPK].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, workflowSK(entry.Timestamp, entry.ID.String()), captured.Item[AttrSK].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, EntityTypeWorkflow, captured.Item[AttrEntityType].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "reviewed PR", captured.Item["entry"].(*types.AttributeValueMemberS).Value)
}

func TestWorkflowRepository_Create_Error(t *testing.T) {
	boom := errors.New("throttled")
	client := &mockClient{
		putItemFunc: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, boom
		},
	}
	repo := NewWorkflowRepository(client, "test-table")

	_, err := repo.Create(context.Background(), model.WorkflowEntry{ID: uuid.New(), Email: "a@b.c", Entry: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflowRepository_GetByEmail_Paginates(t *testing.T) {
	base := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	third := model.WorkflowEntry{ID: uuid.New(), Email: "ada@example.com", Entry: "third", Timestamp: base.Add(2 * time.Second)}
	second := model.WorkflowEntry{ID: uuid.New(), Email: "ada@example.com", Entry: "second", Timestamp: base.Add(time.Second)}
	first := model.WorkflowEntry{ID: uuid.New(), Email: "ada@example.com", Entry: "first", Timestamp: base}

	pageKey := map[string]types.AttributeValue{
		AttrPK: &types.AttributeValueMemberS{Value: workflowPK("ada@example.com")},
	}

	var inputs []*dynamodb.QueryInput
	client := &mockClient{
		queryFunc: func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			inputs = append(inputs, params)
			if params.ExclusiveStartKey == nil {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{storedEntry(t, third), storedEntry(t, second)},
					LastEvaluatedKey: pageKey,
				}, nil
			}
			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{storedEntry(t, first)},
			}, nil
		},
	}
	repo := NewWorkflowRepository(client, "test-table")

	list, err := repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Entry)
	assert.Equal(t, "second", list[1].Entry)
	assert.Equal(t, "first", list[2].Entry)
	assert.Equal(t, first.ID, list[2].ID)

	require.Len(t, inputs, 2)
	assert.False(t, *inputs[0].ScanIndexForward)
	assert.Equal(t, workflowPK("ada@example.com"), inputs[0].ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, workflowPrefix(), inputs[0].ExpressionAttributeValues[":sk"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, pageKey, inputs[1].ExclusiveStartKey)
}

func TestWorkflowRepository_GetByEmail_Empty(t *testing.T) {
	repo := NewWorkflowRepository(&mockClient{}, "test-table")

	list, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestWorkflowRepository_GetByEmail_Errors(t *testing.T) {
	t.Run("query failure", func(t *testing.T) {
		boom := errors.New("network down")
		client := &mockClient{
			queryFunc: func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
				return nil, boom
			},
		}
		_, err := NewWorkflowRepository(client, "test-table").GetByEmail(context.Background(), "a@b.c")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("malformed id", func(t *testing.T) {
		client := &mockClient{
			queryFunc: func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{{
					"id":    &types.AttributeValueMemberS{Value: "not-a-uuid"},
					"entry": &types.AttributeValueMemberS{Value: "x"},
				}}}, nil
			},
		}
		_, err := NewWorkflowRepository(client, "test-table").GetByEmail(context.Background(), "a@b.c")
		assert.Error(t, err)
	})
}
