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

const collectionAttendance = "attendance"

// AttendanceRepository persists attendance entries.
type AttendanceRepository struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{col: db.Collection(collectionAttendance)}
}

type mongoAttendance struct {
	ID           string `bson:"_id"`
	EmployeeID   string `bson:"employee_id"`
	EmployeeName string `bson:"employee_name"`
	Date         string `bson:"date"`
	Status       string `bson:"status"`
	CreatedAt    int64  `bson:"created_at"`
}

func attendanceToDoc(e *domain.AttendanceEntry) mongoAttendance {
	return mongoAttendance{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		Date:         e.Date,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt.Unix(),
	}
}

func (ma *mongoAttendance) toDomain() *domain.AttendanceEntry {
	return &domain.AttendanceEntry{
		ID:           ma.ID,
		EmployeeID:   ma.EmployeeID,
		EmployeeName: ma.EmployeeName,
		Date:         ma.Date,
		Status:       ma.Status,
		CreatedAt:    unixToTime(ma.CreatedAt),
	}
}

func (r *AttendanceRepository) list(ctx context.Context, filter bson.M) ([]*domain.AttendanceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.AttendanceEntry
	for cur.Next(ctx) {
		var ma mongoAttendance
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode attendance: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	return out, cur.Err()
}

func (r *AttendanceRepository) List(ctx context.Context) ([]*domain.AttendanceEntry, error) {
	return r.list(ctx, bson.M{})
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.AttendanceEntry, error) {
	return r.list(ctx, bson.M{"employee_id": employeeID})
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id string) (*domain.AttendanceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAttendance
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AttendanceRepository) Create(ctx context.Context, e *domain.AttendanceEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, attendanceToDoc(e)); err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) Update(ctx context.Context, e *domain.AttendanceEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, attendanceToDoc(e))
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the attendance collection.
func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
