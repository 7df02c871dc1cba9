package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/palseverance/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	habitsService      service.HabitsServiceI
	friendsService     service.FriendsServiceI
	chatService        service.ChatServiceI
	shopService        service.ShopServiceI
	badgesService      service.BadgesServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	HabitsService      service.HabitsServiceI
	FriendsService     service.FriendsServiceI
	ChatService        service.ChatServiceI
	ShopService        service.ShopServiceI
	BadgesService      service.BadgesServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		habitsService:      servicesOptions.HabitsService,
		friendsService:     servicesOptions.FriendsService,
		chatService:        servicesOptions.ChatService,
		shopService:        servicesOptions.ShopService,
		badgesService:      servicesOptions.BadgesService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) setupRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/profile", s.GetProfile)
			r.Put("/profile/settings", s.UpdateSettings)
			r.Delete("/profile", s.DeleteAccount)

			r.Post("/habits", s.CreateHabit)
			r.Get("/habits", s.GetHabits)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/complete", s.CompleteHabit)

			r.Get("/friends", s.GetFriends)
			r.Delete("/friends/{id}", s.RemoveFriend)
			r.Post("/friends/requests", s.SendFriendRequest)
			r.Get("/friends/requests", s.GetFriendRequests)
			r.Post("/friends/requests/{id}/accept", s.AcceptFriendRequest)
			r.Delete("/friends/requests/{id}", s.RejectFriendRequest)

			r.Get("/chats", s.GetChats)
			r.Get("/chats/{id}/messages", s.GetMessages)
			r.Post("/chats/{id}/messages", s.SendMessage)

			r.Get("/shop/items", s.GetShopItems)
			r.Post("/shop/items/{id}/buy", s.BuyItem)
			r.Post("/shop/items/{id}/equip", s.EquipItem)
			r.Post("/shop/unequip/{slot}", s.UnequipItem)

			r.Get("/badges", s.GetBadges)
			r.Get("/leaderboard/{stat}", s.GetLeaderboard)
		})
	})
}

func (s *Server) Run(address string) error {
	s.setupRoutes()
	server := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
