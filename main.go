package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/idobelieveinmiracle/clubs/api"
	"github.com/idobelieveinmiracle/clubs/clients/gcp"
	"github.com/idobelieveinmiracle/clubs/envvars"
	"github.com/idobelieveinmiracle/clubs/services/club"
	"github.com/idobelieveinmiracle/clubs/services/ledger"
	"github.com/idobelieveinmiracle/clubs/services/match"
	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/notification"
	"github.com/idobelieveinmiracle/clubs/services/user"
	"github.com/idobelieveinmiracle/clubs/validator"
)

func main() {
	env := envvars.GetEvn()
	ctx := context.Background()

	firestore := gcp.CreateFirestore(ctx, env.ProjectID)
	defer firestore.Close()

	userService := user.NewService(firestore, env.StorageBucket)
	membershipService := membership.NewService(firestore)
	clubService := club.NewService(firestore, membershipService, env.StorageBucket)
	matchService := match.NewService(firestore, membershipService, userService)
	ledgerService := ledger.NewService(firestore)
	notificationService := notification.NewService(membershipService, userService)

	server := api.NewServer(
		userService,
		clubService,
		membershipService,
		matchService,
		ledgerService,
		notificationService,
	)

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	verifier := validator.NewVerifier(ctx, env.ProjectID)
	server.RegisterRoutes(r, verifier)

	s := &http.Server{
		Handler: r,
		Addr:    "0.0.0.0:" + env.Port,
	}

	slog.Info("Starting HTTP server", "port", env.Port)
	log.Fatal(s.ListenAndServe())
}
