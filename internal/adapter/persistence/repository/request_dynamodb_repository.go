package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "maintenance_requests"
	requestsClientIDIndex    = "client_id-index"
	requestsStatusIndex      = "status-index"
)

type requestItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	ClientName        string `dynamodbav:"client_name"`
	Equipment         string `dynamodbav:"equipment"`
	Category          string `dynamodbav:"category"`
	DefectDescription string `dynamodbav:"defect_description"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`

	Price                  string `dynamodbav:"price,omitempty"`
	AssignedEmployee       string `dynamodbav:"assigned_employee,omitempty"`
	RejectionReason        string `dynamodbav:"rejection_reason,omitempty"`
	MaintenanceDescription string `dynamodbav:"maintenance_description,omitempty"`
	Orientations           string `dynamodbav:"orientations,omitempty"`
	RedirectedEmployee     string `dynamodbav:"redirected_employee,omitempty"`
	PaidAt                 string `dynamodbav:"paid_at,omitempty"`
	FinalizedAt            string `dynamodbav:"finalized_at,omitempty"`
}

// RequestDynamoRepository persists MaintenanceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: status-index (PK: status)
//
// Transitions are applied with a conditional UpdateItem keyed on the status
// the caller read, so a concurrent transition fails the condition instead of
// overwriting it.

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	it := toRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MaintenanceRequest{}, err
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
		return entities.MaintenanceRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) ListAll(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	var (
		items   []entities.MaintenanceRequest
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it requestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *RequestDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.MaintenanceRequest, error) {
	return r.queryIndex(ctx, requestsClientIDIndex, "client_id = :v", clientID)
}

func (r *RequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.MaintenanceRequest, error) {
	return r.queryIndex(ctx, requestsStatusIndex, "#status = :v", string(status))
}

func (r *RequestDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.MaintenanceRequest, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if index == requestsStatusIndex {
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.MaintenanceRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRequestItem(it))
	}
	return items, nil
}

func (r *RequestDynamoRepository) ApplyTransition(ctx context.Context, id string, expectedStatus entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(up.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":expected":   &types.AttributeValueMemberS{Value: string(expectedStatus)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	set := func(attr string, value types.AttributeValue) {
		placeholderName := "#" + attr
		placeholderValue := ":" + attr
		expr += ", " + placeholderName + " = " + placeholderValue
		names[placeholderName] = attr
		vals[placeholderValue] = value
	}
	if up.Price != nil {
		set("price", &types.AttributeValueMemberS{Value: floatToString(*up.Price)})
	}
	if up.AssignedEmployee != nil {
		set("assigned_employee", &types.AttributeValueMemberS{Value: *up.AssignedEmployee})
	}
	if up.RejectionReason != nil {
		set("rejection_reason", &types.AttributeValueMemberS{Value: *up.RejectionReason})
	}
	if up.MaintenanceDescription != nil {
		set("maintenance_description", &types.AttributeValueMemberS{Value: *up.MaintenanceDescription})
	}
	if up.Orientations != nil {
		set("orientations", &types.AttributeValueMemberS{Value: *up.Orientations})
	}
	if up.RedirectedEmployee != nil {
		set("redirected_employee", &types.AttributeValueMemberS{Value: *up.RedirectedEmployee})
	}
	if up.PaidAt != nil {
		set("paid_at", &types.AttributeValueMemberS{Value: up.PaidAt.UTC().Format(time.RFC3339Nano)})
	}
	if up.FinalizedAt != nil {
		set("finalized_at", &types.AttributeValueMemberS{Value: up.FinalizedAt.UTC().Format(time.RFC3339Nano)})
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MaintenanceRequest{}, nil
		}
		return entities.MaintenanceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.MaintenanceRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return fromRequestItem(it), nil
}

func toRequestItem(r entities.MaintenanceRequest) requestItem {
	it := requestItem{
		ID:                r.ID,
		ClientID:          r.ClientID,
		ClientName:        r.ClientName,
		Equipment:         r.Equipment,
		Category:          r.Category,
		DefectDescription: r.DefectDescription,
		Status:            string(r.Status),
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.Price != nil {
		it.Price = floatToString(*r.Price)
	}
	if r.AssignedEmployee != nil {
		it.AssignedEmployee = *r.AssignedEmployee
	}
	if r.RejectionReason != nil {
		it.RejectionReason = *r.RejectionReason
	}
	if r.MaintenanceDescription != nil {
		it.MaintenanceDescription = *r.MaintenanceDescription
	}
	if r.Orientations != nil {
		it.Orientations = *r.Orientations
	}
	if r.RedirectedEmployee != nil {
		it.RedirectedEmployee = *r.RedirectedEmployee
	}
	if r.PaidAt != nil {
		it.PaidAt = r.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	if r.FinalizedAt != nil {
		it.FinalizedAt = r.FinalizedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRequestItem(it requestItem) entities.MaintenanceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	r := entities.MaintenanceRequest{
		ID:                it.ID,
		ClientID:          it.ClientID,
		ClientName:        it.ClientName,
		Equipment:         it.Equipment,
		Category:          it.Category,
		DefectDescription: it.DefectDescription,
		Status:            entities.RequestStatus(it.Status),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.Price != "" {
		if price, err := strconv.ParseFloat(it.Price, 64); err == nil {
			r.Price = &price
		}
	}
	if it.AssignedEmployee != "" {
		v := it.AssignedEmployee
		r.AssignedEmployee = &v
	}
	if it.RejectionReason != "" {
		v := it.RejectionReason
		r.RejectionReason = &v
	}
	if it.MaintenanceDescription != "" {
		v := it.MaintenanceDescription
		r.MaintenanceDescription = &v
	}
	if it.Orientations != "" {
		v := it.Orientations
		r.Orientations = &v
	}
	if it.RedirectedEmployee != "" {
		v := it.RedirectedEmployee
		r.RedirectedEmployee = &v
	}
	if it.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			r.PaidAt = &t
		}
	}
	if it.FinalizedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.FinalizedAt); err == nil {
			r.FinalizedAt = &t
		}
	}
	return r
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
