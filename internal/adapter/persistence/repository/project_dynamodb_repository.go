package repository

import (
	"context"
	"errors"
	"time"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type laborItem struct {
	ManagementHours int `dynamodbav:"management_hours"`
	PrepHours       int `dynamodbav:"prep_hours"`
	PavingHours     int `dynamodbav:"paving_hours"`
	FinishingHours  int `dynamodbav:"finishing_hours"`
	TotalHours      int `dynamodbav:"total_hours"`
}

type equipmentItem struct {
	Pavers        int     `dynamodbav:"pavers"`
	Rollers       int     `dynamodbav:"rollers"`
	Excavators    int     `dynamodbav:"excavators"`
	Trucks        int     `dynamodbav:"trucks"`
	PaverCost     float64 `dynamodbav:"paver_cost"`
	RollerCost    float64 `dynamodbav:"roller_cost"`
	ExcavatorCost float64 `dynamodbav:"excavator_cost"`
	TruckCost     float64 `dynamodbav:"truck_cost"`
}

type financialItem struct {
	TotalCost    float64            `dynamodbav:"total_cost"`
	CostPerSqft  float64            `dynamodbav:"cost_per_sqft"`
	ProfitMargin string             `dynamodbav:"profit_margin"`
	Breakdown    map[string]float64 `dynamodbav:"cost_breakdown"`
}

type projectItem struct {
	ID                 string             `dynamodbav:"id"`
	Name               string             `dynamodbav:"name"`
	Type               string             `dynamodbav:"type"`
	Location           string             `dynamodbav:"location"`
	Submitted          string             `dynamodbav:"submitted"`
	Status             string             `dynamodbav:"status"`
	Cost               string             `dynamodbav:"cost"`
	CompletionDate     string             `dynamodbav:"completion_date"`
	DurationWeeks      string             `dynamodbav:"duration_weeks"`
	LandMile           string             `dynamodbav:"land_mile"`
	Width              string             `dynamodbav:"width"`
	Area               string             `dynamodbav:"area"`
	Material           string             `dynamodbav:"material"`
	Tonnage            string             `dynamodbav:"tonnage"`
	Scope              string             `dynamodbav:"scope"`
	Requirements       string             `dynamodbav:"requirements"`
	EstimatedCost      string             `dynamodbav:"estimated_cost"`
	ProfitMargin       string             `dynamodbav:"profit_margin"`
	SuccessProbability string             `dynamodbav:"success_probability"`
	Materials          map[string]float64 `dynamodbav:"materials"`
	Labor              laborItem          `dynamodbav:"labor"`
	Equipment          equipmentItem      `dynamodbav:"equipment"`
	Financials         financialItem      `dynamodbav:"financials"`
}

// ProjectDynamoRepository persists Project records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Creates are conditional on the id not existing, so a failed write never
// leaves a partial record and an estimate run persists at most once.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
}

func (r *ProjectDynamoRepository) ListAll(ctx context.Context) ([]entities.Project, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *ProjectDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Project, error) {
	var projects []entities.Project
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []projectItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			projects = append(projects, fromProjectItem(it))
		}
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{"#status": "status"}, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:                 p.ID,
		Name:               p.Name,
		Type:               p.Type,
		Location:           p.Location,
		Submitted:          p.Submitted.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		Cost:               p.Cost,
		CompletionDate:     p.CompletionDate.UTC().Format(time.RFC3339Nano),
		DurationWeeks:      floatToString(p.DurationWeeks),
		LandMile:           floatToString(p.LandMile),
		Width:              floatToString(p.Width),
		Area:               floatToString(p.Area),
		Material:           p.Material,
		Tonnage:            floatToString(p.Tonnage),
		Scope:              p.Scope,
		Requirements:       p.Requirements,
		EstimatedCost:      p.EstimatedCost,
		ProfitMargin:       p.ProfitMargin,
		SuccessProbability: p.SuccessProbability,
		Materials:          p.Materials,
		Labor: laborItem{
			ManagementHours: p.Labor.ManagementHours,
			PrepHours:       p.Labor.PrepHours,
			PavingHours:     p.Labor.PavingHours,
			FinishingHours:  p.Labor.FinishingHours,
			TotalHours:      p.Labor.TotalHours,
		},
		Equipment: equipmentItem{
			Pavers:        p.Equipment.Pavers,
			Rollers:       p.Equipment.Rollers,
			Excavators:    p.Equipment.Excavators,
			Trucks:        p.Equipment.Trucks,
			PaverCost:     p.Equipment.PaverCost,
			RollerCost:    p.Equipment.RollerCost,
			ExcavatorCost: p.Equipment.ExcavatorCost,
			TruckCost:     p.Equipment.TruckCost,
		},
		Financials: financialItem{
			TotalCost:    p.Financials.TotalCost,
			CostPerSqft:  p.Financials.CostPerSqft,
			ProfitMargin: p.Financials.ProfitMargin,
			Breakdown: map[string]float64{
				"materials": p.Financials.CostBreakdown.Materials,
				"labor":     p.Financials.CostBreakdown.Labor,
				"equipment": p.Financials.CostBreakdown.Equipment,
				"overhead":  p.Financials.CostBreakdown.Overhead,
				"profit":    p.Financials.CostBreakdown.Profit,
			},
		},
	}
}

func fromProjectItem(it projectItem) entities.Project {
	submitted, _ := time.Parse(time.RFC3339Nano, it.Submitted)
	completion, _ := time.Parse(time.RFC3339Nano, it.CompletionDate)
	return entities.Project{
		ID:                 it.ID,
		Name:               it.Name,
		Type:               it.Type,
		Location:           it.Location,
		Submitted:          submitted,
		Status:             entities.ProjectStatus(it.Status),
		Cost:               it.Cost,
		CompletionDate:     completion,
		DurationWeeks:      parseFloat(it.DurationWeeks),
		LandMile:           parseFloat(it.LandMile),
		Width:              parseFloat(it.Width),
		Area:               parseFloat(it.Area),
		Material:           it.Material,
		Tonnage:            parseFloat(it.Tonnage),
		Scope:              it.Scope,
		Requirements:       it.Requirements,
		EstimatedCost:      it.EstimatedCost,
		ProfitMargin:       it.ProfitMargin,
		SuccessProbability: it.SuccessProbability,
		Materials:          it.Materials,
		Labor: entities.LaborEstimate{
			ManagementHours: it.Labor.ManagementHours,
			PrepHours:       it.Labor.PrepHours,
			PavingHours:     it.Labor.PavingHours,
			FinishingHours:  it.Labor.FinishingHours,
			TotalHours:      it.Labor.TotalHours,
		},
		Equipment: entities.EquipmentEstimate{
			Pavers:        it.Equipment.Pavers,
			Rollers:       it.Equipment.Rollers,
			Excavators:    it.Equipment.Excavators,
			Trucks:        it.Equipment.Trucks,
			PaverCost:     it.Equipment.PaverCost,
			RollerCost:    it.Equipment.RollerCost,
			ExcavatorCost: it.Equipment.ExcavatorCost,
			TruckCost:     it.Equipment.TruckCost,
		},
		Financials: entities.FinancialSummary{
			TotalCost:    it.Financials.TotalCost,
			CostPerSqft:  it.Financials.CostPerSqft,
			ProfitMargin: it.Financials.ProfitMargin,
			CostBreakdown: entities.CostBreakdown{
				Materials: it.Financials.Breakdown["materials"],
				Labor:     it.Financials.Breakdown["labor"],
				Equipment: it.Financials.Breakdown["equipment"],
				Overhead:  it.Financials.Breakdown["overhead"],
				Profit:    it.Financials.Breakdown["profit"],
			},
		},
	}
}
