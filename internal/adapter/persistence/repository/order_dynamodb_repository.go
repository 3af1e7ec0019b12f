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

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID            string             `dynamodbav:"id"`
	CustomerID    string             `dynamodbav:"customer_id"`
	Service       string             `dynamodbav:"service"`
	Description   string             `dynamodbav:"description"`
	Status        string             `dynamodbav:"status"`
	UpdateHistory []statusUpdateItem `dynamodbav:"update_history"`
	Created       string             `dynamodbav:"created"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// UpdateStatus appends the history entry and sets the new status in a single
// conditional write, so concurrent transitions never lose history entries.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

func (r *OrderDynamoRepository) Exists(ctx context.Context, id string) (bool, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return o.ID != "", nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
	appendVal, err := historyAppendValue(entry)
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Service:       string(o.Service),
		Description:   o.Description,
		Status:        string(o.Status),
		UpdateHistory: toStatusUpdateItems(o.UpdateHistory),
		Created:       o.Created.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	created, _ := time.Parse(time.RFC3339Nano, it.Created)
	return entities.Order{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		Service:       entities.Service(it.Service),
		Description:   it.Description,
		Status:        entities.OrderStatus(it.Status),
		UpdateHistory: fromStatusUpdateItems(it.UpdateHistory),
		Created:       created,
	}
}
