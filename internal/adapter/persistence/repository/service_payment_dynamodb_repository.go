package repository

import (
	"context"
	"time"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "service_payments"
	paymentsRequestIDIndex   = "request_id-index"
)

type servicePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	RequestID          string                 `dynamodbav:"request_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ServicePaymentDynamoRepository persists ServicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)

type ServicePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServicePaymentRepository = (*ServicePaymentDynamoRepository)(nil)

func NewServicePaymentDynamoRepository(ddb *dynamodb.Client) *ServicePaymentDynamoRepository {
	return &ServicePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *ServicePaymentDynamoRepository) Create(ctx context.Context, p entities.ServicePayment) (entities.ServicePayment, error) {
	av, err := attributevalue.MarshalMap(toServicePaymentItem(p))
	if err != nil {
		return entities.ServicePayment{}, err
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
		return entities.ServicePayment{}, err
	}
	return p, nil
}

func (r *ServicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServicePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServicePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServicePayment{}, nil
	}

	var it servicePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServicePayment{}, err
	}
	return fromServicePaymentItem(it), nil
}

func (r *ServicePaymentDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.ServicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServicePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it servicePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServicePaymentItem(it))
	}
	return items, nil
}

func toServicePaymentItem(p entities.ServicePayment) servicePaymentItem {
	return servicePaymentItem{
		ID:                 p.ID,
		RequestID:          p.RequestID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromServicePaymentItem(it servicePaymentItem) entities.ServicePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.ServicePayment{
		ID:                 it.ID,
		RequestID:          it.RequestID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
