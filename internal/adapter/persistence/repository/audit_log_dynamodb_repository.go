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

const defaultAuditLogsTableName = "audit_logs"

type auditLogItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	UserName  string `dynamodbav:"user_name"`
	Action    string `dynamodbav:"action"`
	Details   string `dynamodbav:"details"`
	Timestamp string `dynamodbav:"timestamp"`
	TargetID  string `dynamodbav:"target_id,omitempty"`
}

// AuditLogDynamoRepository persists AuditLog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The trail is append-only: this repository deliberately exposes no update
// or delete operation.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOGS_TABLE", defaultAuditLogsTableName),
	}
}

func (r *AuditLogDynamoRepository) Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error) {
	it := auditLogItem{
		ID:        l.ID,
		UserID:    l.UserID,
		UserName:  l.UserName,
		Action:    l.Action,
		Details:   l.Details,
		Timestamp: l.Timestamp.UTC().Format(time.RFC3339Nano),
		TargetID:  l.TargetID,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AuditLog{}, err
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
		return entities.AuditLog{}, err
	}
	return l, nil
}

func (r *AuditLogDynamoRepository) ListAll(ctx context.Context) ([]entities.AuditLog, error) {
	var list []entities.AuditLog
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
			var it auditLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
			list = append(list, entities.AuditLog{
				ID:        it.ID,
				UserID:    it.UserID,
				UserName:  it.UserName,
				Action:    it.Action,
				Details:   it.Details,
				Timestamp: ts,
				TargetID:  it.TargetID,
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return list, nil
}
