package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/adminauth"
	"github.com/Lcsmrct/hennalash-backend/internal/auth"
	"github.com/Lcsmrct/hennalash-backend/internal/config"
	"github.com/Lcsmrct/hennalash-backend/internal/db"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedSlot struct {
	Date string
	Time string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	// A starter week of openings. Re-running the seed never duplicates a
	// slot and never resurrects one the operator already booked out.
	var slots []seedSlot
	start := time.Now().In(cfg.Timezone).AddDate(0, 0, 1)
	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		for _, hour := range []string{"10:00", "14:00", "16:30"} {
			slots = append(slots, seedSlot{Date: date, Time: hour})
		}
	}

	for _, s := range slots {
		filter := bson.M{"date": s.Date, "time": s.Time}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":          uuid.NewString(),
				"date":         s.Date,
				"time":         s.Time,
				"is_available": true,
				"created_at":   time.Now().In(cfg.Timezone),
			},
		}

		_, err := cols.TimeSlots.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Fatalf("seed error for slot %s %s: %v", s.Date, s.Time, err)
		}
	}

	username := envOrDefault("ADMIN_USER", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Printf("seed admin: ADMIN_PASSWORD missing, skipping %s", username)
	} else if err := seedAdminUser(ctx, cols, username, envOrDefault("ADMIN_EMAIL", ""), password, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error for %s: %v", username, err)
	}

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, cols *db.Collections, username, email, password string, loc *time.Location) error {
	if cols == nil || cols.Users == nil {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	set := bson.M{
		"password_hash": hash,
		"role":          adminauth.RoleAdmin,
		"updated_at":    now,
	}
	if email != "" {
		set["email"] = email
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"username":   username,
			"created_at": now,
		},
	}
	_, err = cols.Users.UpdateOne(ctx, bson.M{"username": username}, update, options.Update().SetUpsert(true))
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
