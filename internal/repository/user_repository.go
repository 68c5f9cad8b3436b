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

// Mongo implementation
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

func (m *MongoUserRepository) Insert(ctx context.Context, u *model.User) (string, error) {
	res, err := m.col.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	u.ID = oid
	return oid.Hex(), nil
}

func (m *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var res model.User
	err := m.col.FindOne(ctx, bson.M{"email": email}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// FindAll soporta búsqueda por texto y filtros de rol/estado ("all" = sin filtro).
func (m *MongoUserRepository) FindAll(ctx context.Context, search, role, status string) ([]*model.User, error) {
	query := bson.M{}

	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"displayName": regex},
			bson.M{"name": regex},
			bson.M{"email": regex},
		}
	}
	if role != "" && role != "all" {
		query["role"] = role
	}
	if status != "" && status != "all" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := m.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.User
	for cur.Next(ctx) {
		var v model.User
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

// UpdateByID aplica un $set parcial. Valida el id antes de tocar la base.
func (m *MongoUserRepository) UpdateByID(ctx context.Context, id string, set bson.M) (int64, error) {
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
