package appointment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, appt Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context, limit int64) ([]Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	FindByContact(ctx context.Context, email, phone string) ([]Appointment, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, appt Appointment) error {
	_, err := r.col.InsertOne(ctx, appt)
	return err
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Appointment, error) {
	var appt Appointment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&appt); err != nil {
		return Appointment{}, err
	}
	return appt, nil
}

func (r *MongoRepository) List(ctx context.Context, limit int64) ([]Appointment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "appointment_date", Value: 1}, {Key: "appointment_time", Value: 1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindByContact(ctx context.Context, email, phone string) ([]Appointment, error) {
	filter := bson.M{"client_email": email, "client_phone": phone}
	opts := options.Find().
		SetSort(bson.D{{Key: "appointment_date", Value: -1}, {Key: "appointment_time", Value: -1}})
	return r.find(ctx, filter, opts)
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Appointment, error) {
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Appointment, 0)
	for cursor.Next(ctx) {
		var appt Appointment
		if err := cursor.Decode(&appt); err != nil {
			return nil, err
		}
		items = append(items, appt)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
