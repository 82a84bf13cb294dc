package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const attendanceCollection = "attendance"

// attendanceDocument is the stored shape of one ledger record.
type attendanceDocument struct {
	ID        string    `bson:"_id"`
	EmpID     string    `bson:"empId"`
	Date      string    `bson:"date"`
	CheckIn   *string   `bson:"checkIn"`
	CheckOut  *string   `bson:"checkOut"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d attendanceDocument) toEntity() attendance.Attendance {
	return attendance.Attendance{
		ID:         d.ID,
		EmployeeID: d.EmpID,
		Date:       d.Date,
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type attendanceRepository struct {
	coll *mongo.Collection
}

// EnsureAttendanceIndexes creates the unique (empId, date) index the ledger
// relies on. Safe to call on every startup.
func EnsureAttendanceIndexes(ctx context.Context, db *database.MongoDB) error {
	_, err := db.Collection(attendanceCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "empId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("empId_date_unique"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("date_desc"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}
	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	var doc attendanceDocument
	err := r.coll.FindOne(ctx, bson.M{"empId": employeeID, "date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date, err)
	}
	att := doc.toEntity()
	return &att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	now := time.Now().UTC()
	doc := attendanceDocument{
		ID:        id.String(),
		EmpID:     newAttendance.EmployeeID,
		Date:      newAttendance.Date,
		CheckIn:   newAttendance.CheckIn,
		CheckOut:  newAttendance.CheckOut,
		Status:    newAttendance.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return doc.toEntity(), nil
}

// SetCheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckIn(ctx context.Context, employeeID string, date string, checkIn string) (bool, error) {
	filter := bson.M{"empId": employeeID, "date": date, "checkIn": nil}
	update := bson.M{"$set": bson.M{
		"checkIn":   checkIn,
		"status":    attendance.StatusPresent,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to set check-in: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, employeeID string, date string, checkOut string) (bool, error) {
	filter := bson.M{
		"empId":    employeeID,
		"date":     date,
		"checkIn":  bson.M{"$ne": nil},
		"checkOut": nil,
	}
	update := bson.M{"$set": bson.M{
		"checkOut":  checkOut,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to set check-out: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	query := bson.M{}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		query["empId"] = *filter.EmployeeID
	}
	dateRange := bson.M{}
	if filter.StartDate != nil && *filter.StartDate != "" {
		dateRange["$gte"] = *filter.StartDate
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		dateRange["$lte"] = *filter.EndDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit := int64(filter.Limit)
	if limit == 0 {
		limit = 20
	}
	page := int64(filter.Page)
	if page == 0 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "empId", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode attendances: %w", err)
	}

	attendances := make([]attendance.Attendance, 0, len(docs))
	for _, doc := range docs {
		attendances = append(attendances, doc.toEntity())
	}
	return attendances, total, nil
}

// CountCheckedIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountCheckedIn(ctx context.Context, date string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"date": date, "checkIn": bson.M{"$ne": nil}})
	if err != nil {
		return 0, fmt.Errorf("failed to count checked-in employees: %w", err)
	}
	return count, nil
}

func NewAttendanceRepository(db *database.MongoDB) attendance.AttendanceRepository {
	return &attendanceRepository{coll: db.Collection(attendanceCollection)}
}
