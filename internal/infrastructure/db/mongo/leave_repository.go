package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peopleops/hr-system/internal/core/domain"
)

const collectionLeave = "leave_requests"

// LeaveRepository persists leave requests.
type LeaveRepository struct {
	col *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *LeaveRepository {
	return &LeaveRepository{col: db.Collection(collectionLeave)}
}

type mongoLeave struct {
	ID           string `bson:"_id"`
	EmployeeID   string `bson:"employee_id"`
	EmployeeName string `bson:"employee_name"`
	StartDate    string `bson:"start_date"`
	EndDate      string `bson:"end_date"`
	Reason       string `bson:"reason"`
	Status       string `bson:"status"`
	CreatedAt    int64  `bson:"created_at"`
}

func leaveToDoc(l *domain.LeaveRequest) mongoLeave {
	return mongoLeave{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		Reason:       l.Reason,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt.Unix(),
	}
}

func (ml *mongoLeave) toDomain() *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:           ml.ID,
		EmployeeID:   ml.EmployeeID,
		EmployeeName: ml.EmployeeName,
		StartDate:    ml.StartDate,
		EndDate:      ml.EndDate,
		Reason:       ml.Reason,
		Status:       ml.Status,
		CreatedAt:    unixToTime(ml.CreatedAt),
	}
}

func (r *LeaveRepository) list(ctx context.Context, filter bson.M) ([]*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.LeaveRequest
	for cur.Next(ctx) {
		var ml mongoLeave
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode leave request: %w", err)
		}
		out = append(out, ml.toDomain())
	}
	return out, cur.Err()
}

func (r *LeaveRepository) List(ctx context.Context) ([]*domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{})
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{"employee_id": employeeID})
}

func (r *LeaveRepository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoLeave
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("find leave request: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *LeaveRepository) Create(ctx context.Context, l *domain.LeaveRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, leaveToDoc(l)); err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	return nil
}

func (r *LeaveRepository) Update(ctx context.Context, l *domain.LeaveRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": l.ID}, leaveToDoc(l))
	if err != nil {
		return fmt.Errorf("update leave request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeaveNotFound
	}
	return nil
}

func (r *LeaveRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete leave request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLeaveNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the leave_requests collection.
func (r *LeaveRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
