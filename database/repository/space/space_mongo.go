package spaceRepo

import (
	"context"
	"fmt"
	"time"

	"workhive/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workhive/models"
)

// MongoSpaceRepo implements SpaceRepository using MongoDB.
type MongoSpaceRepo struct {
	coll *mongo.Collection
}

// NewMongoSpaceRepo returns a repository backed by the "spaces" collection.
func NewMongoSpaceRepo() *MongoSpaceRepo {
	return &MongoSpaceRepo{coll: database.Collection("spaces")}
}

func (repo *MongoSpaceRepo) Create(space *models.Space) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, space); err != nil {
		return fmt.Errorf("error creating space: %w", err)
	}
	return nil
}

func (repo *MongoSpaceRepo) GetByID(id string) (*models.Space, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var space models.Space
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&space); err != nil {
		return nil, fmt.Errorf("space not found: %w", err)
	}
	return &space, nil
}

func (repo *MongoSpaceRepo) Update(space *models.Space) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	space.UpdatedAt = time.Now().UTC()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": space.ID}, bson.M{"$set": space})
	if err != nil {
		return fmt.Errorf("error updating space %s: %w", space.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("space %s not found", space.ID)
	}
	return nil
}

func (repo *MongoSpaceRepo) List(filter SpaceFilter) ([]models.Space, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Disponible != nil {
		query["disponible"] = *filter.Disponible
	}

	cur, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("error listing spaces: %w", err)
	}
	defer cur.Close(ctx)

	var spaces []models.Space
	if err := cur.All(ctx, &spaces); err != nil {
		return nil, fmt.Errorf("error decoding spaces: %w", err)
	}
	return spaces, nil
}

func (repo *MongoSpaceRepo) SetDisponible(id string, disponible bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"disponible": disponible, "updatedAt": time.Now().UTC()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error toggling space %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("space %s not found", id)
	}
	return nil
}
