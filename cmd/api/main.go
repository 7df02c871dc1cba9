// @title Palseverance API
// @description API for the habit-tracker app "Palseverance"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/limbo/palseverance/internal/api"
	"github.com/limbo/palseverance/internal/cache"
	"github.com/limbo/palseverance/internal/notify"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/internal/service"
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/limbo/palseverance/pkg/config"
	jwtservice "github.com/limbo/palseverance/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	badgesRepo := repository.NewBadgesRepo(&dbCfg)
	friendsRepo := repository.NewFriendsRepo(&dbCfg)
	chatsRepo := repository.NewChatsRepo(&dbCfg)
	shopRepo := repository.NewShopRepo(&dbCfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	catalog, err := badgesRepo.LoadCatalog(ctx)
	cancel()
	if err != nil {
		log.Fatal("loading badge catalog error: " + err.Error())
	}

	var leaderboardCache cache.Cache
	if redisURL := cfg.GetString("REDIS_URL"); redisURL != "" {
		redisCache, err := cache.NewRedisCache(redisURL)
		if err != nil {
			log.Fatal("connecting to redis error: " + err.Error())
		}
		leaderboardCache = redisCache
	}

	var notifier notify.Publisher = notify.NopPublisher{}
	if amqpURL := cfg.GetString("AMQP_URL"); amqpURL != "" {
		publisher, err := notify.NewAMQPPublisher(amqpURL, cfg.GetString("AMQP_QUEUE"))
		if err != nil {
			log.Fatal("connecting to amqp error: " + err.Error())
		}
		notifier = publisher
	}

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, shopRepo),
		HabitsService:      service.NewHabitsService(habitsRepo, catalog),
		FriendsService:     service.NewFriendsService(friendsRepo, usersRepo, notifier),
		ChatService:        service.NewChatService(chatsRepo, notifier),
		ShopService:        service.NewShopService(shopRepo, catalog),
		BadgesService:      service.NewBadgesService(usersRepo, catalog),
		LeaderboardService: service.NewLeaderboardService(usersRepo, leaderboardCache),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
