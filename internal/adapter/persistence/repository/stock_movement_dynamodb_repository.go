package repository

import (
	"context"
	"time"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMovementsTableName = "stock_movements"
	movementsItemIDIndex      = "item_id-index"
)

type stockMovementItem struct {
	ID                  string `dynamodbav:"id"`
	ItemID              string `dynamodbav:"item_id"`
	Type                string `dynamodbav:"type"`
	Quantity            int    `dynamodbav:"quantity"`
	UserID              string `dynamodbav:"user_id"`
	UserName            string `dynamodbav:"user_name"`
	Timestamp           string `dynamodbav:"timestamp"`
	Reason              string `dynamodbav:"reason"`
	RelatedAttendanceID string `dynamodbav:"related_attendance_id,omitempty"`
}

// StockMovementDynamoRepository journals stock changes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: item_id-index (PK: item_id)

type StockMovementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockMovementRepository = (*StockMovementDynamoRepository)(nil)

func NewStockMovementDynamoRepository(ddb *dynamodb.Client) *StockMovementDynamoRepository {
	return &StockMovementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCK_MOVEMENTS_TABLE", defaultMovementsTableName),
	}
}

func (r *StockMovementDynamoRepository) Create(ctx context.Context, m entities.StockMovement) (entities.StockMovement, error) {
	it := stockMovementItem{
		ID:                  m.ID,
		ItemID:              m.ItemID,
		Type:                string(m.Type),
		Quantity:            m.Quantity,
		UserID:              m.UserID,
		UserName:            m.UserName,
		Timestamp:           m.Timestamp.UTC().Format(time.RFC3339Nano),
		Reason:              m.Reason,
		RelatedAttendanceID: m.RelatedAttendanceID,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StockMovement{}, err
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
		return entities.StockMovement{}, err
	}
	return m, nil
}

func (r *StockMovementDynamoRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.StockMovement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(movementsItemIDIndex),
		KeyConditionExpression: aws.String("item_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		return nil, err
	}

	movements := make([]entities.StockMovement, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stockMovementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
		movements = append(movements, entities.StockMovement{
			ID:                  it.ID,
			ItemID:              it.ItemID,
			Type:                entities.MovementType(it.Type),
			Quantity:            it.Quantity,
			UserID:              it.UserID,
			UserName:            it.UserName,
			Timestamp:           ts,
			Reason:              it.Reason,
			RelatedAttendanceID: it.RelatedAttendanceID,
		})
	}
	return movements, nil
}
