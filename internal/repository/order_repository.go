package repository

import (
	"context"
	"time"

	"garments-order-tracker/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (m *MongoOrderRepository) Insert(ctx context.Context, o *model.Order) (string, error) {
	res, err := m.col.InsertOne(ctx, o)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	o.ID = oid
	return oid.Hex(), nil
}

func (m *MongoOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var res model.Order
	err = m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoOrderRepository) FindByTrackingID(ctx context.Context, trackingID string) (*model.Order, error) {
	var res model.Order
	err := m.col.FindOne(ctx, bson.M{"trackingId": trackingID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// FindByFilter: email y/o status vacíos significan "sin filtro".
func (m *MongoOrderRepository) FindByFilter(ctx context.Context, email, status string) ([]*model.Order, error) {
	query := bson.M{}
	if email != "" {
		query["email"] = email
	}
	if status != "" {
		query["status"] = status
	}

	cur, err := m.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

// UpdateFields aplica un $set parcial y estampa updatedAt.
func (m *MongoOrderRepository) UpdateFields(ctx context.Context, id string, set bson.M) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	set["updatedAt"] = time.Now().UTC()
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// AppendTracking agrega al final del historial; los registros previos no se tocan.
func (m *MongoOrderRepository) AppendTracking(ctx context.Context, id string, tu model.TrackingUpdate) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	update := bson.M{
		"$push": bson.M{"trackingUpdates": tu},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *MongoOrderRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
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
