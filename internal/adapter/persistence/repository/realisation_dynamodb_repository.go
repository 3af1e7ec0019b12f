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

const defaultRealisationsTableName = "realisations"

type realisationItem struct {
	ID             string             `dynamodbav:"id"`
	OrderID        string             `dynamodbav:"order_id"`
	EmployeeID     string             `dynamodbav:"employee_id"`
	CreatedBy      string             `dynamodbav:"created_by,omitempty"`
	Status         string             `dynamodbav:"status"`
	AssignmentDate string             `dynamodbav:"assignment_date"`
	UpdateHistory  []statusUpdateItem `dynamodbav:"update_history"`
}

// RealisationDynamoRepository persists Realisation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type RealisationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRealisationRepository = (*RealisationDynamoRepository)(nil)

func NewRealisationDynamoRepository(ddb *dynamodb.Client) *RealisationDynamoRepository {
	return &RealisationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REALISATIONS_TABLE", defaultRealisationsTableName),
	}
}

func (r *RealisationDynamoRepository) Create(ctx context.Context, rl entities.Realisation) (entities.Realisation, error) {
	it := toRealisationItem(rl)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Realisation{}, err
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
		return entities.Realisation{}, err
	}
	return rl, nil
}

func (r *RealisationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Realisation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Realisation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Realisation{}, nil
	}

	var it realisationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Realisation{}, err
	}
	return fromRealisationItem(it), nil
}

func (r *RealisationDynamoRepository) List(ctx context.Context) ([]entities.Realisation, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Realisation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it realisationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRealisationItem(it))
	}
	return items, nil
}

func (r *RealisationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RealisationStatus, entry entities.StatusUpdate) (entities.Realisation, error) {
	appendVal, err := historyAppendValue(entry)
	if err != nil {
		return entities.Realisation{}, err
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
			return entities.Realisation{}, nil
		}
		return entities.Realisation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Realisation{}, nil
	}
	var it realisationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Realisation{}, err
	}
	return fromRealisationItem(it), nil
}

func toRealisationItem(rl entities.Realisation) realisationItem {
	return realisationItem{
		ID:             rl.ID,
		OrderID:        rl.OrderID,
		EmployeeID:     rl.EmployeeID,
		CreatedBy:      rl.CreatedBy,
		Status:         string(rl.Status),
		AssignmentDate: rl.AssignmentDate.UTC().Format(time.RFC3339Nano),
		UpdateHistory:  toStatusUpdateItems(rl.UpdateHistory),
	}
}

func fromRealisationItem(it realisationItem) entities.Realisation {
	assigned, _ := time.Parse(time.RFC3339Nano, it.AssignmentDate)
	return entities.Realisation{
		ID:             it.ID,
		OrderID:        it.OrderID,
		EmployeeID:     it.EmployeeID,
		CreatedBy:      it.CreatedBy,
		Status:         entities.RealisationStatus(it.Status),
		AssignmentDate: assigned,
		UpdateHistory:  fromStatusUpdateItems(it.UpdateHistory),
	}
}
