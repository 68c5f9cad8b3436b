package repository

import (
	"context"

	"garments-order-tracker/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Los pagos se insertan una sola vez y nunca se modifican.
type MongoPaymentRepository struct {
	col *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{col: db.Collection("payments")}
}

func (m *MongoPaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error) {
	var res model.Payment
	err := m.col.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoPaymentRepository) Insert(ctx context.Context, p *model.Payment) (string, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	p.ID = oid
	return oid.Hex(), nil
}
