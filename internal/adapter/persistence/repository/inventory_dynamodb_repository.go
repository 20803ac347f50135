package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInventoryTableName = "inventory_items"

type inventoryItemRecord struct {
	ID       string `dynamodbav:"id"`
	SKU      string `dynamodbav:"sku"`
	Brand    string `dynamodbav:"brand"`
	Model    string `dynamodbav:"model"`
	Type     string `dynamodbav:"type"`
	Material string `dynamodbav:"material"`
	Category string `dynamodbav:"category"`

	CurrentStock int `dynamodbav:"current_stock"`
	MinStock     int `dynamodbav:"min_stock"`

	Supplier       string `dynamodbav:"supplier,omitempty"`
	CostPrice      string `dynamodbav:"cost_price"`
	SuggestedPrice string `dynamodbav:"suggested_price"`

	AssignedSpecialistID   string `dynamodbav:"assigned_specialist_id,omitempty"`
	AssignedSpecialistName string `dynamodbav:"assigned_specialist_name,omitempty"`

	LastEntryDate string `dynamodbav:"last_entry_date"`
	Observations  string `dynamodbav:"observations,omitempty"`
}

// InventoryDynamoRepository persists InventoryItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Stock changes go through conditional UpdateItem expressions so concurrent
// finalizes cannot lose updates and the stock can never go negative.

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	it := toInventoryRecord(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.InventoryItem{}, err
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
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryDynamoRepository) Update(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: item.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #brand = :brand, #model = :model, #type = :type, #material = :material, " +
			"#category = :category, #min_stock = :min_stock, #supplier = :supplier, #cost_price = :cost_price, " +
			"#suggested_price = :suggested_price, #assigned_specialist_id = :asid, #assigned_specialist_name = :asname, " +
			"#observations = :observations"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":brand":           &types.AttributeValueMemberS{Value: item.Brand},
			":model":           &types.AttributeValueMemberS{Value: item.Model},
			":type":            &types.AttributeValueMemberS{Value: item.Type},
			":material":        &types.AttributeValueMemberS{Value: item.Material},
			":category":        &types.AttributeValueMemberS{Value: string(item.Category)},
			":min_stock":       &types.AttributeValueMemberN{Value: strconv.Itoa(item.MinStock)},
			":supplier":        &types.AttributeValueMemberS{Value: item.Supplier},
			":cost_price":      &types.AttributeValueMemberS{Value: floatToString(item.CostPrice)},
			":suggested_price": &types.AttributeValueMemberS{Value: floatToString(item.SuggestedPrice)},
			":asid":            &types.AttributeValueMemberS{Value: item.AssignedSpecialistID},
			":asname":          &types.AttributeValueMemberS{Value: item.AssignedSpecialistName},
			":observations":    &types.AttributeValueMemberS{Value: item.Observations},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                       "id",
			"#brand":                    "brand",
			"#model":                    "model",
			"#type":                     "type",
			"#material":                 "material",
			"#category":                 "category",
			"#min_stock":                "min_stock",
			"#supplier":                 "supplier",
			"#cost_price":               "cost_price",
			"#suggested_price":          "suggested_price",
			"#assigned_specialist_id":   "assigned_specialist_id",
			"#assigned_specialist_name": "assigned_specialist_name",
			"#observations":             "observations",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}

	var it inventoryItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryRecord(it), nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryRecord(it), nil
}

func (r *InventoryDynamoRepository) ListAll(ctx context.Context) ([]entities.InventoryItem, error) {
	var list []entities.InventoryItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it inventoryItemRecord
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			list = append(list, fromInventoryRecord(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return list, nil
}

// ConsumeOne decrements the stock by exactly 1 with a server-side floor:
// the condition current_stock > 0 makes a decrement at zero fail instead of
// going negative. Missing item and zero stock both report consumed=false.
func (r *InventoryDynamoRepository) ConsumeOne(ctx context.Context, id string) (entities.InventoryItem, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #current_stock > :zero"),
		UpdateExpression:    aws.String("SET #current_stock = #current_stock - :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#current_stock": "current_stock",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			item, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.InventoryItem{}, false, gerr
			}
			return item, false, nil
		}
		return entities.InventoryItem{}, false, err
	}

	var it inventoryItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InventoryItem{}, false, err
	}
	return fromInventoryRecord(it), true, nil
}

// AddStock applies a signed delta. Negative deltas carry the condition
// current_stock >= |delta| so the stock never goes below zero; a failed
// condition returns a zero-value item.
func (r *InventoryDynamoRepository) AddStock(ctx context.Context, id string, delta int) (entities.InventoryItem, error) {
	cond := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
	}
	if delta < 0 {
		cond += " AND #current_stock >= :abs"
		values[":abs"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String("SET #current_stock = #current_stock + :delta"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#current_stock": "current_stock",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}

	var it inventoryItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryRecord(it), nil
}

func toInventoryRecord(item entities.InventoryItem) inventoryItemRecord {
	return inventoryItemRecord{
		ID:       item.ID,
		SKU:      item.SKU,
		Brand:    item.Brand,
		Model:    item.Model,
		Type:     item.Type,
		Material: item.Material,
		Category: string(item.Category),

		CurrentStock: item.CurrentStock,
		MinStock:     item.MinStock,

		Supplier:       item.Supplier,
		CostPrice:      floatToString(item.CostPrice),
		SuggestedPrice: floatToString(item.SuggestedPrice),

		AssignedSpecialistID:   item.AssignedSpecialistID,
		AssignedSpecialistName: item.AssignedSpecialistName,

		LastEntryDate: item.LastEntryDate.UTC().Format(time.RFC3339Nano),
		Observations:  item.Observations,
	}
}

func fromInventoryRecord(it inventoryItemRecord) entities.InventoryItem {
	lastEntry, _ := time.Parse(time.RFC3339Nano, it.LastEntryDate)
	costPrice, _ := strconv.ParseFloat(it.CostPrice, 64)
	suggestedPrice, _ := strconv.ParseFloat(it.SuggestedPrice, 64)

	return entities.InventoryItem{
		ID:       it.ID,
		SKU:      it.SKU,
		Brand:    it.Brand,
		Model:    it.Model,
		Type:     it.Type,
		Material: it.Material,
		Category: entities.InventoryCategory(it.Category),

		CurrentStock: it.CurrentStock,
		MinStock:     it.MinStock,

		Supplier:       it.Supplier,
		CostPrice:      costPrice,
		SuggestedPrice: suggestedPrice,

		AssignedSpecialistID:   it.AssignedSpecialistID,
		AssignedSpecialistName: it.AssignedSpecialistName,

		LastEntryDate: lastEntry,
		Observations:  it.Observations,
	}
}
