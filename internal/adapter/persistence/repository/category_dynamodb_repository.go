package repository

import (
	"context"
	"errors"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCategoriesTableName = "categories"

type categoryItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// CategoryDynamoRepository persists Category entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The registry is small; List is a full Scan and uniqueness is checked by
// the use case over the listed names.

type CategoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	av, err := attributevalue.MarshalMap(categoryItem{ID: c.ID, Name: c.Name})
	if err != nil {
		return entities.Category{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Category, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Category{}, err
	}
	if len(out.Item) == 0 {
		return entities.Category{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Category{}, err
	}
	return entities.Category{ID: it.ID, Name: it.Name}, nil
}

func (r *CategoryDynamoRepository) List(ctx context.Context) ([]entities.Category, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Category, 0, len(out.Items))
	for _, raw := range out.Items {
		var it categoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.Category{ID: it.ID, Name: it.Name})
	}
	return items, nil
}

func (r *CategoryDynamoRepository) Update(ctx context.Context, c entities.Category) (entities.Category, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: c.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: c.Name},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#name": "name",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Category{}, nil
		}
		return entities.Category{}, err
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Category{}, err
	}
	return entities.Category{ID: it.ID, Name: it.Name}, nil
}

func (r *CategoryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}
