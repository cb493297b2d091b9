package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/Domotic593/Ruleta-Completa/controllers/admins"
)

func SetAdminRoutes(api *mux.Router, db *gorm.DB) {
	adminController := admins.NewController(db)

	adminRouter := api.PathPrefix("/admin").Subrouter()

	// Catalog management
	adminRouter.Handle("/productos", http.HandlerFunc(adminController.ListPrizesHandler)).Methods(http.MethodGet)
	adminRouter.Handle("/productos", http.HandlerFunc(adminController.CreatePrizeHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/productos/{id:[0-9]+}", http.HandlerFunc(adminController.UpdatePrizeHandler)).Methods(http.MethodPut)
	adminRouter.Handle("/productos/{id:[0-9]+}", http.HandlerFunc(adminController.DeletePrizeHandler)).Methods(http.MethodDelete)

	// Award management (manual override, independent of the spin flow)
	adminRouter.Handle("/premios", http.HandlerFunc(adminController.ListAwardsHandler)).Methods(http.MethodGet)
	adminRouter.Handle("/premios", http.HandlerFunc(adminController.CreateAwardHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/premios/{id:[0-9]+}", http.HandlerFunc(adminController.UpdateAwardHandler)).Methods(http.MethodPut)
	adminRouter.Handle("/premios/{id:[0-9]+}", http.HandlerFunc(adminController.DeleteAwardHandler)).Methods(http.MethodDelete)

	// Aggregates and leaderboard
	adminRouter.Handle("/estadisticas", http.HandlerFunc(adminController.EstadisticasHandler)).Methods(http.MethodGet)
	adminRouter.Handle("/usuarios", http.HandlerFunc(adminController.ListUsersHandler)).Methods(http.MethodGet)
}
