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

const defaultAttendancesTableName = "attendances"

type partConditionItem struct {
	HasDamage bool   `dynamodbav:"has_damage"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

type inspectionStateItem struct {
	Screen  partConditionItem `dynamodbav:"tela"`
	Back    partConditionItem `dynamodbav:"traseira"`
	Cameras partConditionItem `dynamodbav:"cameras"`
	Buttons partConditionItem `dynamodbav:"botoes"`
}

type attendanceItem struct {
	ID            string `dynamodbav:"id"`
	WarrantyID    string `dynamodbav:"warranty_id"`
	Date          string `dynamodbav:"date"`
	WarrantyUntil string `dynamodbav:"warranty_until"`

	TechnicianID   string `dynamodbav:"technician_id"`
	TechnicianName string `dynamodbav:"technician_name"`
	SpecialistID   string `dynamodbav:"specialist_id"`
	SpecialistName string `dynamodbav:"specialist_name"`

	ClientName  string `dynamodbav:"client_name"`
	ClientPhone string `dynamodbav:"client_phone,omitempty"`
	DeviceModel string `dynamodbav:"device_model"`
	DeviceIMEI  string `dynamodbav:"device_imei,omitempty"`

	State    inspectionStateItem `dynamodbav:"state"`
	Coverage string              `dynamodbav:"coverage"`

	UsedItemID string `dynamodbav:"used_item_id,omitempty"`

	ValueBlindagem string `dynamodbav:"value_blindagem"`
	ValuePelicula  string `dynamodbav:"value_pelicula"`
	ValueOthers    string `dynamodbav:"value_others"`
	TotalValue     string `dynamodbav:"total_value"`

	PaymentMethod    string `dynamodbav:"payment_method"`
	PaymentReference string `dynamodbav:"payment_reference,omitempty"`

	ClientSignature string   `dynamodbav:"client_signature"`
	Photos          []string `dynamodbav:"photos,omitempty"`

	IsDeleted bool `dynamodbav:"is_deleted"`
}

// AttendanceDynamoRepository persists Attendance entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Creates are guarded with attribute_not_exists so a retried finalize can
// never silently overwrite an existing record. The only update path is the
// soft-delete flag flip.

type AttendanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAttendanceRepository = (*AttendanceDynamoRepository)(nil)

func NewAttendanceDynamoRepository(ddb *dynamodb.Client) *AttendanceDynamoRepository {
	return &AttendanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ATTENDANCES_TABLE", defaultAttendancesTableName),
	}
}

func (r *AttendanceDynamoRepository) Create(ctx context.Context, a entities.Attendance) (entities.Attendance, error) {
	it := toAttendanceItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Attendance{}, err
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
		return entities.Attendance{}, err
	}
	return a, nil
}

func (r *AttendanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Attendance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Attendance{}, err
	}
	if len(out.Item) == 0 {
		return entities.Attendance{}, nil
	}

	var it attendanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Attendance{}, err
	}
	return fromAttendanceItem(it), nil
}

func (r *AttendanceDynamoRepository) ListAll(ctx context.Context) ([]entities.Attendance, error) {
	var list []entities.Attendance
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
			var it attendanceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			list = append(list, fromAttendanceItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return list, nil
}

func (r *AttendanceDynamoRepository) SetDeleted(ctx context.Context, id string) (entities.Attendance, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_deleted = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#is_deleted": "is_deleted"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Attendance{}, nil
		}
		return entities.Attendance{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Attendance{}, nil
	}

	var it attendanceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Attendance{}, err
	}
	return fromAttendanceItem(it), nil
}

func toAttendanceItem(a entities.Attendance) attendanceItem {
	return attendanceItem{
		ID:            a.ID,
		WarrantyID:    a.WarrantyID,
		Date:          a.Date.UTC().Format(time.RFC3339Nano),
		WarrantyUntil: a.WarrantyUntil.UTC().Format(time.RFC3339Nano),

		TechnicianID:   a.TechnicianID,
		TechnicianName: a.TechnicianName,
		SpecialistID:   a.SpecialistID,
		SpecialistName: a.SpecialistName,

		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		DeviceModel: a.DeviceModel,
		DeviceIMEI:  a.DeviceIMEI,

		State:    toInspectionStateItem(a.State),
		Coverage: string(a.Coverage),

		UsedItemID: a.UsedItemID,

		ValueBlindagem: floatToString(a.ValueBlindagem),
		ValuePelicula:  floatToString(a.ValuePelicula),
		ValueOthers:    floatToString(a.ValueOthers),
		TotalValue:     floatToString(a.TotalValue),

		PaymentMethod:    string(a.PaymentMethod),
		PaymentReference: a.PaymentReference,

		ClientSignature: a.ClientSignature,
		Photos:          a.Photos,

		IsDeleted: a.IsDeleted,
	}
}

func fromAttendanceItem(it attendanceItem) entities.Attendance {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	until, _ := time.Parse(time.RFC3339Nano, it.WarrantyUntil)
	valueBlindagem, _ := strconv.ParseFloat(it.ValueBlindagem, 64)
	valuePelicula, _ := strconv.ParseFloat(it.ValuePelicula, 64)
	valueOthers, _ := strconv.ParseFloat(it.ValueOthers, 64)
	totalValue, _ := strconv.ParseFloat(it.TotalValue, 64)

	return entities.Attendance{
		ID:            it.ID,
		WarrantyID:    it.WarrantyID,
		Date:          date,
		WarrantyUntil: until,

		TechnicianID:   it.TechnicianID,
		TechnicianName: it.TechnicianName,
		SpecialistID:   it.SpecialistID,
		SpecialistName: it.SpecialistName,

		ClientName:  it.ClientName,
		ClientPhone: it.ClientPhone,
		DeviceModel: it.DeviceModel,
		DeviceIMEI:  it.DeviceIMEI,

		State:    fromInspectionStateItem(it.State),
		Coverage: entities.ServiceCoverage(it.Coverage),

		UsedItemID: it.UsedItemID,

		ValueBlindagem: valueBlindagem,
		ValuePelicula:  valuePelicula,
		ValueOthers:    valueOthers,
		TotalValue:     totalValue,

		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		PaymentReference: it.PaymentReference,

		ClientSignature: it.ClientSignature,
		Photos:          it.Photos,

		IsDeleted: it.IsDeleted,
	}
}

func toInspectionStateItem(s entities.InspectionState) inspectionStateItem {
	conv := func(c entities.PartCondition) partConditionItem {
		return partConditionItem{HasDamage: c.HasDamage, Notes: c.Notes}
	}
	return inspectionStateItem{
		Screen:  conv(s.Screen),
		Back:    conv(s.Back),
		Cameras: conv(s.Cameras),
		Buttons: conv(s.Buttons),
	}
}

func fromInspectionStateItem(it inspectionStateItem) entities.InspectionState {
	conv := func(c partConditionItem) entities.PartCondition {
		return entities.PartCondition{HasDamage: c.HasDamage, Notes: c.Notes}
	}
	return entities.InspectionState{
		Screen:  conv(it.Screen),
		Back:    conv(it.Back),
		Cameras: conv(it.Cameras),
		Buttons: conv(it.Buttons),
	}
}
