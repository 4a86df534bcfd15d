package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersEmailIndex       = "email-index"
)

type orderItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	ShippingCity string `dynamodbav:"shipping_city,omitempty"`
	Status       string `dynamodbav:"status"`
	Config       string `dynamodbav:"config"`
	CutList      string `dynamodbav:"cut_list"`
	Adjustments  string `dynamodbav:"adjustments"`
	BaseTotal    string `dynamodbav:"base_total"`
	FinalTotal   string `dynamodbav:"final_total"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists confirmed orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Config, cut list and adjustments are stored as JSON documents so the
// snapshot is read back exactly as it was confirmed.

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
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
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
	return decodeOrder(out.Item)
}

// ListByEmail returns every order of a customer, newest first.
func (r *OrderDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	err := r.queryEmail(ctx, email, types.SelectAllAttributes, func(out *dynamodb.QueryOutput) error {
		for _, raw := range out.Items {
			o, err := decodeOrder(raw)
			if err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (r *OrderDynamoRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	total := 0
	err := r.queryEmail(ctx, email, types.SelectCount, func(out *dynamodb.QueryOutput) error {
		total += int(out.Count)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *OrderDynamoRepository) queryEmail(ctx context.Context, email string, sel types.Select, page func(*dynamodb.QueryOutput) error) error {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Select: sel,
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		if err := page(out); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
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
	return decodeOrder(out.Attributes)
}

func decodeOrder(av map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) (orderItem, error) {
	cfg, err := json.Marshal(o.Config)
	if err != nil {
		return orderItem{}, err
	}
	cl, err := json.Marshal(o.CutList)
	if err != nil {
		return orderItem{}, err
	}
	adjustments := o.Adjustments
	if adjustments == nil {
		adjustments = []entities.RuleAdjustment{}
	}
	adj, err := json.Marshal(adjustments)
	if err != nil {
		return orderItem{}, err
	}

	return orderItem{
		ID:           o.ID,
		Email:        o.Email,
		ShippingCity: o.ShippingCity,
		Status:       string(o.Status),
		Config:       string(cfg),
		CutList:      string(cl),
		Adjustments:  string(adj),
		BaseTotal:    floatToString(o.BaseTotal),
		FinalTotal:   floatToString(o.FinalTotal),
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	o := entities.Order{
		ID:           it.ID,
		Email:        it.Email,
		ShippingCity: it.ShippingCity,
		Status:       entities.OrderStatus(it.Status),
	}
	if err := unmarshalSnapshot(it.Config, &o.Config); err != nil {
		return entities.Order{}, err
	}
	if err := unmarshalSnapshot(it.CutList, &o.CutList); err != nil {
		return entities.Order{}, err
	}
	if err := unmarshalSnapshot(it.Adjustments, &o.Adjustments); err != nil {
		return entities.Order{}, err
	}
	if o.Adjustments == nil {
		o.Adjustments = []entities.RuleAdjustment{}
	}

	o.BaseTotal, _ = strconv.ParseFloat(it.BaseTotal, 64)
	o.FinalTotal, _ = strconv.ParseFloat(it.FinalTotal, 64)
	o.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	o.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return o, nil
}

func unmarshalSnapshot(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}
