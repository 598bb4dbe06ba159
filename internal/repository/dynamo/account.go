package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/dtroode/workflow-tracker-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type accountItem struct {
	ID        string    `dynamodbav:"id"`
	Name      string    `dynamodbav:"name"`
	Email     string    `dynamodbav:"email"`
	Password  string    `dynamodbav:"password"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// AccountRepository stores accounts in a DynamoDB table, one item per email.
type AccountRepository struct {
	client    Client
	tableName string
}

func NewAccountRepository(client Client, tableName string) *AccountRepository {
	return &AccountRepository{
		client:    client,
		tableName: tableName,
	}
}

// Create puts the account only if no item exists for its email.
func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	item, err := attributevalue.MarshalMap(accountItem{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Password:  account.Password,
		CreatedAt: account.CreatedAt,
	})
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to marshal account: %w", err)
	}

	item[AttrPK] = &types.AttributeValueMemberS{Value: accountPK(account.Email)}
	item[AttrSK] = &types.AttributeValueMemberS{Value: accountSK()}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: EntityTypeAccount}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return model.Account{}, model.ErrAlreadyExists
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: accountPK(email)},
			AttrSK: &types.AttributeValueMemberS{Value: accountSK()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if result.Item == nil {
		return model.Account{}, model.ErrNotFound
	}

	var item accountItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return model.Account{}, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	id, err := uuid.Parse(item.ID)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to parse account id: %w", err)
	}

	return model.Account{
		ID:        id,
		Name:      item.Name,
		Email:     item.Email,
		Password:  item.Password,
		CreatedAt: item.CreatedAt,
	}, nil
}

// GetByCredentials matches both email and password exactly.
func (r *AccountRepository) GetByCredentials(ctx context.Context, email, password string) (model.Account, error) {
	account, err := r.GetByEmail(ctx, email)
	if err != nil {
		return model.Account{}, err
	}

	if account.Password != password {
		return model.Account{}, model.ErrNotFound
	}

	return account, nil
}
