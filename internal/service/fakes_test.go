package service

// Fakes en memoria de los repositorios, para testear los servicios sin Mongo.

import (
	"context"
	"strings"
	"time"

	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Insert(_ context.Context, u *model.User) (string, error) {
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return u.ID.Hex(), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context, search, role, status string) ([]*model.User, error) {
	var out []*model.User
	for _, u := range f.users {
		if search != "" && !strings.Contains(strings.ToLower(u.Email+u.Name+u.DisplayName), strings.ToLower(search)) {
			continue
		}
		if role != "" && role != "all" && u.Role != role {
			continue
		}
		if status != "" && status != "all" && u.Status != status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateByID(_ context.Context, id string, set bson.M) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	for _, u := range f.users {
		if u.ID.Hex() != id {
			continue
		}
		for k, v := range set {
			switch k {
			case "role":
				u.Role = v.(string)
			case "status":
				u.Status = v.(string)
			case "suspendReason":
				u.SuspendReason = v.(string)
			case "suspendFeedback":
				u.SuspendFeedback = v.(string)
			case "suspendedAt":
				t := v.(time.Time)
				u.SuspendedAt = &t
			case "updatedAt":
				u.UpdatedAt = v.(time.Time)
			}
		}
		return 1, nil
	}
	return 0, nil
}

type fakeProductRepo struct {
	products []*model.Product
	updates  int
	deletes  int
}

func (f *fakeProductRepo) Insert(_ context.Context, p *model.Product) (string, error) {
	p.ID = primitive.NewObjectID()
	f.products = append(f.products, p)
	return p.ID.Hex(), nil
}

func (f *fakeProductRepo) FindPage(_ context.Context, createdBy string, page, limit int) ([]*model.Product, int64, error) {
	var all []*model.Product
	for _, p := range f.products {
		if createdBy == "" || p.CreatedBy == createdBy {
			all = append(all, p)
		}
	}

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (f *fakeProductRepo) UpdateByID(_ context.Context, id string, set bson.M) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	f.updates++
	for _, p := range f.products {
		if p.ID.Hex() == id {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeProductRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	f.deletes++
	for i, p := range f.products {
		if p.ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeOrderRepo struct {
	orders      map[string]*model.Order
	updateCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*model.Order)}
}

func (f *fakeOrderRepo) Insert(_ context.Context, o *model.Order) (string, error) {
	o.ID = primitive.NewObjectID()
	f.orders[o.ID.Hex()] = o
	return o.ID.Hex(), nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindByTrackingID(_ context.Context, trackingID string) (*model.Order, error) {
	for _, o := range f.orders {
		if o.TrackingID == trackingID {
			return o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderRepo) FindByFilter(_ context.Context, email, status string) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range f.orders {
		if email != "" && o.Email != email {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateFields(_ context.Context, id string, set bson.M) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	o, ok := f.orders[id]
	if !ok {
		return 0, nil
	}

	f.updateCalls++
	for k, v := range set {
		switch k {
		case "status":
			o.Status = v.(string)
		case "paymentStatus":
			o.PaymentStatus = v.(string)
		case "transactionId":
			o.TransactionID = v.(string)
		case "paidAt":
			t := v.(time.Time)
			o.PaidAt = &t
		case "approvedAt":
			t := v.(time.Time)
			o.ApprovedAt = &t
		case "updatedAt":
			o.UpdatedAt = v.(time.Time)
		}
	}
	return 1, nil
}

func (f *fakeOrderRepo) AppendTracking(_ context.Context, id string, tu model.TrackingUpdate) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	o, ok := f.orders[id]
	if !ok {
		return 0, nil
	}
	o.TrackingUpdates = append(o.TrackingUpdates, tu)
	return 1, nil
}

func (f *fakeOrderRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	if _, ok := f.orders[id]; !ok {
		return 0, nil
	}
	delete(f.orders, id)
	return 1, nil
}

type fakePaymentRepo struct {
	payments []*model.Payment
}

func (f *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*model.Payment, error) {
	for _, p := range f.payments {
		if p.TransactionID == transactionID {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePaymentRepo) Insert(_ context.Context, p *model.Payment) (string, error) {
	p.ID = primitive.NewObjectID()
	f.payments = append(f.payments, p)
	return p.ID.Hex(), nil
}
