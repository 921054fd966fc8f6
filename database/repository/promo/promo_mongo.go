package promoRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workhive/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workhive/models"
)

// MongoPromoRepo implements PromoRepository using MongoDB.
type MongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo returns a repository backed by the "promos" collection.
func NewMongoPromoRepo() *MongoPromoRepo {
	return &MongoPromoRepo{coll: database.Collection("promos")}
}

func (repo *MongoPromoRepo) Create(promo *models.PromoCode) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))
	if _, err := repo.coll.InsertOne(ctx, promo); err != nil {
		return fmt.Errorf("error creating promo code: %w", err)
	}
	return nil
}

func (repo *MongoPromoRepo) GetByCode(code string) (*models.PromoCode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var promo models.PromoCode
	filter := bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}
	if err := repo.coll.FindOne(ctx, filter).Decode(&promo); err != nil {
		return nil, fmt.Errorf("promo code not found: %w", err)
	}
	return &promo, nil
}

func (repo *MongoPromoRepo) Update(promo *models.PromoCode) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": promo.ID}, bson.M{"$set": promo})
	if err != nil {
		return fmt.Errorf("error updating promo code %s: %w", promo.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("promo code %s not found", promo.ID)
	}
	return nil
}

func (repo *MongoPromoRepo) List(activeOnly bool) ([]models.PromoCode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if activeOnly {
		query["active"] = true
	}
	cur, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.M{"code": 1}))
	if err != nil {
		return nil, fmt.Errorf("error listing promo codes: %w", err)
	}
	defer cur.Close(ctx)

	var promos []models.PromoCode
	if err := cur.All(ctx, &promos); err != nil {
		return nil, fmt.Errorf("error decoding promo codes: %w", err)
	}
	return promos, nil
}

func (repo *MongoPromoRepo) IncrementUses(code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}
	if _, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"uses": 1}}); err != nil {
		return fmt.Errorf("error incrementing promo uses for %s: %w", code, err)
	}
	return nil
}
