package repository

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/domain/entities"
	"orderdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsOrderIDIndex     = "order_id-index"
)

type quotationItem struct {
	ID            string             `dynamodbav:"id"`
	OrderID       string             `dynamodbav:"order_id"`
	Price         int                `dynamodbav:"price"`
	Details       string             `dynamodbav:"details"`
	OwnerID       string             `dynamodbav:"owner_id,omitempty"`
	Status        string             `dynamodbav:"status"`
	UpdateHistory []statusUpdateItem `dynamodbav:"update_history"`
	Created       string             `dynamodbav:"created"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.Quotation, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func (r *QuotationDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus, entry entities.StatusUpdate) (entities.Quotation, error) {
	appendVal, err := historyAppendValue(entry)
	if err != nil {
		return entities.Quotation{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #update_history = list_append(if_not_exists(#update_history, :empty), :entry)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":empty":  &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry":  appendVal,
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":         "status",
			"#update_history": "update_history",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:            q.ID,
		OrderID:       q.OrderID,
		Price:         q.Price,
		Details:       q.Details,
		OwnerID:       q.OwnerID,
		Status:        string(q.Status),
		UpdateHistory: toStatusUpdateItems(q.UpdateHistory),
		Created:       q.Created.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	created, _ := time.Parse(time.RFC3339Nano, it.Created)
	return entities.Quotation{
		ID:            it.ID,
		OrderID:       it.OrderID,
		Price:         it.Price,
		Details:       it.Details,
		OwnerID:       it.OwnerID,
		Status:        entities.QuotationStatus(it.Status),
		UpdateHistory: fromStatusUpdateItems(it.UpdateHistory),
		Created:       created,
	}
}
