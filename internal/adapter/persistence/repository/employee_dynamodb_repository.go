package repository

import (
	"context"

	"orderdesk/internal/domain/entities"
	"orderdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEmployeesTableName = "employees"

type employeeItem struct {
	ID        string `dynamodbav:"id"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Email     string `dynamodbav:"email"`
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
	it := employeeItem{ID: e.ID, FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}
	av, err := attributevalue.MarshalMap(it)
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
	return entities.Employee{ID: it.ID, FirstName: it.FirstName, LastName: it.LastName, Email: it.Email}, nil
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
		items = append(items, entities.Employee{ID: it.ID, FirstName: it.FirstName, LastName: it.LastName, Email: it.Email})
	}
	return items, nil
}

func (r *EmployeeDynamoRepository) Exists(ctx context.Context, id string) (bool, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return e.ID != "", nil
}
