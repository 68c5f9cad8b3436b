package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"garments-order-tracker/internal/config"
	"garments-order-tracker/internal/controller"
	"garments-order-tracker/internal/middleware"
	"garments-order-tracker/internal/rabbit"
	"garments-order-tracker/internal/repository"
	"garments-order-tracker/internal/service"
	"garments-order-tracker/internal/stripe"
)

func main() {
	cfg := config.Load()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// RabbitMQ es opcional: sin RABBIT_URL el servicio corre solo HTTP
	var events service.EventPublisher
	if cfg.RabbitURL != "" {
		conn, err := amqp091.Dial(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("Error conectando a RabbitMQ: %v", err)
		}
		ch, err := conn.Channel()
		if err != nil {
			log.Fatalf("Error creando canal en RabbitMQ: %v", err)
		}
		events = rabbit.NewPublisher(ch)
	}

	// Repositorios y servicios
	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)

	provider := stripe.NewClient(cfg.StripeAPIURL, cfg.StripeSecret)

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, events)
	paymentService := service.NewPaymentService(orderRepo, paymentRepo, provider, cfg.SiteDomain, events)
	authService := service.NewAuthService(cfg.AuthURL)

	// Handlers
	userCtl := controller.NewUserController(userService)
	productCtl := controller.NewProductController(productService, userService)
	orderCtl := controller.NewOrderController(orderService, userService)
	paymentCtl := controller.NewPaymentController(paymentService)

	// Router
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS))

	// Rutas públicas
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running just fine!")
	})
	r.POST("/users", userCtl.Register)
	r.GET("/users/:email/role", userCtl.GetRole)
	r.GET("/users", userCtl.List)
	r.PATCH("/users/:id/role", userCtl.UpdateRole)
	r.GET("/products", productCtl.List)
	r.GET("/orders/id/:id", orderCtl.GetByID)

	// Rutas protegidas (requieren token)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))

	auth.POST("/products", productCtl.Create)
	auth.PATCH("/products/:id", productCtl.Update)
	auth.DELETE("/products/:id", productCtl.Delete)

	auth.POST("/orders", orderCtl.Create)
	auth.GET("/orders", orderCtl.List)
	auth.GET("/orders/:email", orderCtl.ListByEmail)
	auth.GET("/orders/track/:trackingId", orderCtl.GetByTrackingID)
	auth.PATCH("/orders/:id", orderCtl.Update)
	auth.PATCH("/orders/:id/status", orderCtl.UpdateStatus)
	auth.PATCH("/orders/:id/tracking", orderCtl.AppendTracking)
	auth.PATCH("/orders/:id/payment-status", orderCtl.UpdatePaymentStatus)
	auth.DELETE("/orders/:id", orderCtl.Delete)

	auth.POST("/payment-checkout-session", paymentCtl.CreateCheckoutSession)
	// Una sola ruta top-level: la sesión se verifica contra el proveedor
	r.PATCH("/payment-success", paymentCtl.PaymentSuccess)

	// Ejecutar servidor
	log.Printf("Garments Order Tracker ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
