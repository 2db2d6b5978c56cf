package api

import (
	"net/http"
	"time"

	"github.com/IEVN1001-20001021/api-paso/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

// Route paths are kept verbatim from the mobile clients already in the field.
const (
	HealthRoute = "/"

	RegisterRoute = "/register"
	LoginRoute    = "/login"
	UserRoute     = "/usuario/:userID"

	ProfileRoute      = "/profile"
	ProfileImageRoute = "/update-profile-image"

	TripRegisterRoute    = "/registrarViaje"
	TripsRecentRoute     = "/viajes/recientes"
	TripsRoute           = "/viajes"
	TripDetailRoute      = "/viaje/detalle/:tripID"
	TripOwnerRoute       = "/viaje/propietario/:tripID"
	RateDriverRoute      = "/calificarConductor"
	TripsInProgressRoute = "/viajes/en-progreso"

	CardsAddRoute       = "/cards/add"
	CardsRoute          = "/cards"
	CardDeactivateRoute = "/cards/delete/:cardID"

	OrderSendRoute           = "/enviarPedido"
	OrdersPendingRoute       = "/pedidos/pendientes"
	OrdersAcceptedRoute      = "/pedidos/aceptados"
	OrdersRejectedRoute      = "/pedidos/rechazados"
	OrdersInProgressRoute    = "/pedidos/en-progreso"
	OrderStateRoute          = "/pedidos/:orderID/estado"
	OrderDeliveredRoute      = "/pedidos/:orderID/entregado"
	NotificationDismissRoute = "/notificaciones/descartar/:orderID"

	ShopsSearchRoute = "/get-tiendas"
	ShopDetailsRoute = "/store-details"
	ShopsRoute       = "/shops"
	ShopAddRoute     = "/add-shop"
	ProductsRoute    = "/products"
	ProductRoute     = "/producto/:productID"
	ProductAddRoute  = "/add-product"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	ProfileService ProfileServicer
	TripService    TripServicer
	CardService    CardServicer
	OrderService   OrderServicer
	CatalogService CatalogServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	profileHandler := NewProfileHandler(args.ProfileService)
	tripsHandler := NewTripsHandler(args.TripService)
	cardsHandler := NewCardsHandler(args.CardService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	catalogHandler := NewCatalogHandler(args.CatalogService)

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "El servidor está funcionando correctamente."})
	})

	r.POST(RegisterRoute, authHandler.Register)
	r.POST(LoginRoute, authHandler.Login)

	r.GET(TripsRecentRoute, tripsHandler.Recent)
	r.GET(TripsRoute, tripsHandler.Index)

	r.GET(ShopsSearchRoute, catalogHandler.Search)
	r.GET(ShopDetailsRoute, catalogHandler.Detail)
	r.GET(ShopsRoute, catalogHandler.Index)
	r.POST(ShopAddRoute, catalogHandler.CreateShop)
	r.GET(ProductsRoute, catalogHandler.Products)
	r.POST(ProductAddRoute, catalogHandler.CreateProduct)

	authed := r.Group("", middlewares.AuthRequired(args.JWTSecretKey))

	authed.GET(UserRoute, authHandler.ShowUser)

	authed.GET(ProfileRoute, profileHandler.Show)
	authed.PUT(ProfileImageRoute, profileHandler.UpdateImage)

	authed.POST(TripRegisterRoute, tripsHandler.Create)
	authed.GET(TripDetailRoute, tripsHandler.Detail)
	authed.GET(TripOwnerRoute, tripsHandler.Owner)
	authed.POST(RateDriverRoute, tripsHandler.RateDriver)

	authed.POST(CardsAddRoute, cardsHandler.Add)
	authed.GET(CardsRoute, cardsHandler.Index)
	authed.PUT(CardDeactivateRoute, cardsHandler.Deactivate)

	authed.POST(OrderSendRoute, ordersHandler.Create)
	authed.GET(OrdersPendingRoute, ordersHandler.Pending)
	authed.GET(OrdersAcceptedRoute, ordersHandler.Accepted)
	authed.GET(OrdersRejectedRoute, ordersHandler.Rejected)
	authed.GET(OrdersInProgressRoute, ordersHandler.InProgress)
	authed.GET(TripsInProgressRoute, ordersHandler.TripsInProgress)
	authed.PUT(OrderStateRoute, ordersHandler.UpdateState)
	authed.PUT(OrderDeliveredRoute, ordersHandler.MarkDelivered)
	authed.PUT(NotificationDismissRoute, ordersHandler.DismissNotification)

	authed.GET(ProductRoute, catalogHandler.ShowProduct)

	return r
}
