package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mergington/activities-gobackend/internal/models"
)

// Collection names in the production database.
const (
	activitiesCollection    = "activities"
	teachersCollection      = "teachers"
	announcementsCollection = "announcements"
)

// MongoActivityStore implements ActivityStore on a MongoDB collection.
type MongoActivityStore struct {
	collection *mongo.Collection
}

func NewMongoActivityStore(db *mongo.Database) *MongoActivityStore {
	return &MongoActivityStore{collection: db.Collection(activitiesCollection)}
}

func (s *MongoActivityStore) All(ctx context.Context) ([]models.Activity, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var activities []models.Activity
	if err := cur.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *MongoActivityStore) Get(ctx context.Context, name string) (*models.Activity, error) {
	var activity models.Activity
	err := s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&activity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *MongoActivityStore) PushParticipant(ctx context.Context, name, email string) (int64, error) {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$push": bson.M{"participants": email}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *MongoActivityStore) PullParticipant(ctx context.Context, name, email string) (int64, error) {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$pull": bson.M{"participants": email}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *MongoActivityStore) DistinctDays(ctx context.Context) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$schedule_details.days"}},
		{{Key: "$group", Value: bson.M{"_id": "$schedule_details.days"}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	days := []string{}
	for cur.Next(ctx) {
		var doc struct {
			Day string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		days = append(days, doc.Day)
	}
	return days, cur.Err()
}

// MongoAnnouncementStore implements AnnouncementStore on a MongoDB collection.
type MongoAnnouncementStore struct {
	collection *mongo.Collection
}

func NewMongoAnnouncementStore(db *mongo.Database) *MongoAnnouncementStore {
	return &MongoAnnouncementStore{collection: db.Collection(announcementsCollection)}
}

func (s *MongoAnnouncementStore) All(ctx context.Context) ([]models.Announcement, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var announcements []models.Announcement
	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *MongoAnnouncementStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&announcement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (s *MongoAnnouncementStore) Insert(ctx context.Context, a *models.Announcement) (primitive.ObjectID, error) {
	a.ID = primitive.NewObjectID()

	result, err := s.collection.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoAnnouncementStore) Update(ctx context.Context, id primitive.ObjectID, upd AnnouncementUpdate) (int64, error) {
	set := bson.M{
		"message":         upd.Message,
		"expiration_date": upd.ExpirationDate,
	}
	if upd.StartDate != "" {
		set["start_date"] = upd.StartDate
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (s *MongoAnnouncementStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// MongoTeacherStore implements TeacherStore on a MongoDB collection.
type MongoTeacherStore struct {
	collection *mongo.Collection
}

func NewMongoTeacherStore(db *mongo.Database) *MongoTeacherStore {
	return &MongoTeacherStore{collection: db.Collection(teachersCollection)}
}

func (s *MongoTeacherStore) Exists(ctx context.Context, username string) (bool, error) {
	err := s.collection.FindOne(ctx, bson.M{"_id": username}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
