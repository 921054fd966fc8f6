package reservationRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"workhive/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workhive/models"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per-space creation locks
}

// NewMongoReservationRepo returns a repository backed by the "reservations" collection.
func NewMongoReservationRepo() *MongoReservationRepo {
	return &MongoReservationRepo{
		coll:  database.Collection("reservations"),
		locks: make(map[string]*sync.Mutex),
	}
}

func (repo *MongoReservationRepo) spaceLock(spaceID string) *sync.Mutex {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	lock, ok := repo.locks[spaceID]
	if !ok {
		lock = &sync.Mutex{}
		repo.locks[spaceID] = lock
	}
	return lock
}

func (repo *MongoReservationRepo) Create(res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}

func (repo *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		return nil, fmt.Errorf("reservation not found: %w", err)
	}
	return &res, nil
}

func (repo *MongoReservationRepo) UpdateStatus(id string, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating reservation %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found", id)
	}
	return nil
}

func (repo *MongoReservationRepo) List(filter ReservationFilter) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.SpaceID != "" {
		query["spaceId"] = filter.SpaceID
	}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if !filter.From.IsZero() {
		query["end"] = bson.M{"$gt": filter.From}
	}
	if !filter.To.IsZero() {
		query["start"] = bson.M{"$lt": filter.To}
	}

	cur, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.M{"start": 1}))
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Reservation
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, nil
}

// ListOverlapping uses the half-open interval rule: a stored [start, end)
// intersects [from, to) iff start < to and end > from.
func (repo *MongoReservationRepo) ListOverlapping(spaceID string, from, to time.Time) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{
		"spaceId": spaceID,
		"start":   bson.M{"$lt": to},
		"end":     bson.M{"$gt": from},
	}
	cur, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.M{"start": 1}))
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping reservations: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Reservation
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding overlapping reservations: %w", err)
	}
	return out, nil
}

func (repo *MongoReservationRepo) CreateIfAccepted(res *models.Reservation, check func(existing []models.Reservation) error) error {
	lock := repo.spaceLock(res.SpaceID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := repo.ListOverlapping(res.SpaceID, res.Start, res.End)
	if err != nil {
		return err
	}
	if err := check(existing); err != nil {
		return err
	}
	return repo.Create(res)
}

func (repo *MongoReservationRepo) PromoteStarted(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.ReservationConfirmed,
		"start":  bson.M{"$lte": now},
		"end":    bson.M{"$gt": now},
	}
	update := bson.M{"$set": bson.M{"status": models.ReservationInProgress, "updatedAt": now}}
	res, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error promoting started reservations: %w", err)
	}
	return res.ModifiedCount, nil
}

func (repo *MongoReservationRepo) CompleteEnded(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$in": []string{models.ReservationConfirmed, models.ReservationInProgress}},
		"end":    bson.M{"$lte": now},
	}
	update := bson.M{"$set": bson.M{"status": models.ReservationCompleted, "updatedAt": now}}
	res, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error completing ended reservations: %w", err)
	}
	return res.ModifiedCount, nil
}
