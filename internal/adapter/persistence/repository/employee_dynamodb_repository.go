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

const defaultEmployeesTableName = "employees"

type employeeItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone"`
	Specialization string `dynamodbav:"specialization"`
}

// EmployeeDynamoRepository persists Employee entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
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
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Employee, 0, len(out.Items))
	for _, raw := range out.Items {
		var it employeeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEmployeeItem(it))
	}
	return items, nil
}

func (r *EmployeeDynamoRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: e.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #email = :email, #phone = :phone, #specialization = :specialization"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":           &types.AttributeValueMemberS{Value: e.Name},
			":email":          &types.AttributeValueMemberS{Value: e.Email},
			":phone":          &types.AttributeValueMemberS{Value: e.Phone},
			":specialization": &types.AttributeValueMemberS{Value: e.Specialization},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#name":           "name",
			"#email":          "email",
			"#phone":          "phone",
			"#specialization": "specialization",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Employee{}, nil
		}
		return entities.Employee{}, err
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		Specialization: e.Specialization,
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:             it.ID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Specialization: it.Specialization,
	}
}
