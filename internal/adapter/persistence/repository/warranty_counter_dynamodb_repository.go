package repository

import (
	"context"
	"fmt"
	"strconv"

	"iblind_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// WarrantyCounterDynamoRepository hands out warranty-code numbers from a
// tenant/year-scoped atomic counter.
//
// Table requirements:
//   - PK: id (string), e.g. "warranty#IB#2026"
//
// The ADD update is atomic on the server, so concurrent finalizes always
// observe distinct values and codes never collide, unlike a random suffix.

type WarrantyCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarrantySequence = (*WarrantyCounterDynamoRepository)(nil)

func NewWarrantyCounterDynamoRepository(ddb *dynamodb.Client) *WarrantyCounterDynamoRepository {
	return &WarrantyCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *WarrantyCounterDynamoRepository) Next(ctx context.Context, tenantPrefix string, year int) (int, error) {
	key := fmt.Sprintf("warranty#%s#%d", tenantPrefix, year)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("unexpected counter attribute for %s", key)
	}
	seq, err := strconv.Atoi(raw.Value)
	if err != nil {
		return 0, fmt.Errorf("parse counter value for %s: %w", key, err)
	}
	return seq, nil
}
