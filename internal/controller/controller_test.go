package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/repository"
	"garments-order-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fakes mínimos para levantar los handlers sin Mongo.

type memUserRepo struct{ users []*model.User }

func (f *memUserRepo) Insert(_ context.Context, u *model.User) (string, error) {
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return u.ID.Hex(), nil
}

func (f *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memUserRepo) FindAll(_ context.Context, _, _, _ string) ([]*model.User, error) {
	return f.users, nil
}

func (f *memUserRepo) UpdateByID(_ context.Context, id string, _ bson.M) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	return 0, nil
}

type memOrderRepo struct{ orders map[string]*model.Order }

func (f *memOrderRepo) Insert(_ context.Context, o *model.Order) (string, error) {
	o.ID = primitive.NewObjectID()
	f.orders[o.ID.Hex()] = o
	return o.ID.Hex(), nil
}

func (f *memOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (f *memOrderRepo) FindByTrackingID(_ context.Context, _ string) (*model.Order, error) {
	return nil, repository.ErrNotFound
}

func (f *memOrderRepo) FindByFilter(_ context.Context, _, _ string) ([]*model.Order, error) {
	return nil, nil
}

func (f *memOrderRepo) UpdateFields(_ context.Context, _ string, _ bson.M) (int64, error) {
	return 0, nil
}

func (f *memOrderRepo) AppendTracking(_ context.Context, _ string, _ model.TrackingUpdate) (int64, error) {
	return 0, nil
}

func (f *memOrderRepo) DeleteByID(_ context.Context, _ string) (int64, error) { return 0, nil }

// el middleware de auth se reemplaza por uno que fija el email directo
func fakeAuth(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userEmail", email)
		c.Next()
	}
}

func testRouter(t *testing.T, callerEmail string) (*gin.Engine, *memUserRepo, *memOrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUserRepo{}
	orders := &memOrderRepo{orders: make(map[string]*model.Order)}

	userSvc := service.NewUserService(users)
	orderSvc := service.NewOrderService(orders, nil)

	userCtl := NewUserController(userSvc)
	orderCtl := NewOrderController(orderSvc, userSvc)

	r := gin.New()
	r.POST("/users", userCtl.Register)
	r.GET("/orders/id/:id", orderCtl.GetByID)

	auth := r.Group("/")
	auth.Use(fakeAuth(callerEmail))
	auth.POST("/orders", orderCtl.Create)

	return r, users, orders
}

func TestRegisterEndpoint(t *testing.T) {
	r, users, _ := testRouter(t, "a@x.com")

	register := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"email":"a@x.com","name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := register()
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "insertedId")

	// segunda vez: aviso y un solo documento
	rec = register()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"user exists"}`, rec.Body.String())
	assert.Len(t, users.users, 1)
}

func TestCreateOrderEndpoint(t *testing.T) {
	body := `{"email":%q,"items":[{"productId":"p1","productTitle":"Remera","quantity":1,"unitPrice":10}],"totalPrice":10}`

	t.Run("email ajeno => 403 FORBIDDEN", func(t *testing.T) {
		r, users, orders := testRouter(t, "a@x.com")
		_, err := users.Insert(context.Background(), &model.User{
			Email: "a@x.com", Role: model.RoleUser, Status: model.StatusActive,
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders",
			strings.NewReader(strings.Replace(body, "%q", `"b@x.com"`, 1)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
		assert.Empty(t, orders.orders)
	})

	t.Run("email propio => 201, pending/unpaid", func(t *testing.T) {
		r, users, orders := testRouter(t, "a@x.com")
		_, err := users.Insert(context.Background(), &model.User{
			Email: "a@x.com", Role: model.RoleUser, Status: model.StatusActive,
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders",
			strings.NewReader(strings.Replace(body, "%q", `"a@x.com"`, 1)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, orders.orders, 1)
		for _, o := range orders.orders {
			assert.Equal(t, model.OrderPending, o.Status)
			assert.Equal(t, model.PaymentUnpaid, o.PaymentStatus)
		}
	})

	t.Run("sin cuenta en el directorio => 403 NO_USER", func(t *testing.T) {
		r, _, _ := testRouter(t, "fantasma@x.com")

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders",
			strings.NewReader(strings.Replace(body, "%q", `"fantasma@x.com"`, 1)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "NO_USER")
	})
}

func TestGetOrderByIDEndpoint(t *testing.T) {
	r, _, _ := testRouter(t, "a@x.com")

	t.Run("inexistente => objeto vacío, no error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/id/64b0c0ffee0c0ffee0c0ffee", nil)
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("id malformado => 400 antes de tocar el store", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/id/zzz", nil)
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
