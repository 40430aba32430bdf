package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Appointments    *mongo.Collection
	TimeSlots       *mongo.Collection
	Reviews         *mongo.Collection
	ContactMessages *mongo.Collection
	InstagramTokens *mongo.Collection
	Users           *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	database := client.Database(dbName)

	cols := &Collections{
		Appointments:    database.Collection("appointments"),
		TimeSlots:       database.Collection("time_slots"),
		Reviews:         database.Collection("reviews"),
		ContactMessages: database.Collection("contact_messages"),
		InstagramTokens: database.Collection("instagram_tokens"),
		Users:           database.Collection("users"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Slot uniqueness lives in the store, not in an application pre-check:
	// two concurrent creates for the same (date, time) race past any
	// existence query, the unique index does not.
	_, err := cols.TimeSlots.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Appointments.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "appointment_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "client_email", Value: 1}, {Key: "client_phone", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.InstagramTokens.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	return nil
}
