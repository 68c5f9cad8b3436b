package repository

import (
	"context"
	"time"

	"garments-order-tracker/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("products")}
}

func (m *MongoProductRepository) Insert(ctx context.Context, p *model.Product) (string, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	p.ID = oid
	return oid.Hex(), nil
}

// FindPage devuelve la página pedida más el total para armar la paginación.
func (m *MongoProductRepository) FindPage(ctx context.Context, createdBy string, page, limit int) ([]*model.Product, int64, error) {
	query := bson.M{}
	if createdBy != "" {
		query["createdBy"] = createdBy
	}

	total, err := m.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := m.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*model.Product
	for cur.Next(ctx) {
		var v model.Product
		if err := cur.Decode(&v); err != nil {
			return nil, 0, err
		}
		out = append(out, &v)
	}
	return out, total, cur.Err()
}

func (m *MongoProductRepository) UpdateByID(ctx context.Context, id string, set bson.M) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	set["updatedAt"] = time.Now().UTC()
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (m *MongoProductRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
