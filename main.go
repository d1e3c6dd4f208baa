package main

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/reelmates/reelmates-BE/api"
	"github.com/reelmates/reelmates-BE/internal/catalog"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/reelmates/reelmates-BE/internal/notification"
	"github.com/reelmates/reelmates-BE/internal/release"
	"github.com/reelmates/reelmates-BE/internal/util"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	log.Info().Msg("configurations loaded successfully ✅")

	clock, err := util.ReleaseCheckClock(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse release schedule 😣")
	}

	ctx := context.Background()

	// Initialize the Firebase app and its clients
	firebaseApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.FirebaseCredentialsFile))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize firebase app 😣")
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create firestore client 😣")
	}
	defer firestoreClient.Close()

	messagingClient, err := firebaseApp.Messaging(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging client 😣")
	}
	log.Info().Msg("connected to firebase ✅")

	store := db.NewFirestoreStore(firestoreClient)

	// Wire the notification core
	history := notification.NewHistoryStore(store)
	gateway := notification.NewGateway(store, notification.NewFCMSender(messagingClient))
	dispatcher := notification.NewDispatcher(store, history, gateway)

	// Start the daily release check
	catalogClient := catalog.NewClient(config.TMDBBaseURL, config.TMDBAPIKey)
	defer catalogClient.Close()

	tracker, err := release.NewTracker(store, catalogClient, dispatcher, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create release tracker 😣")
	}

	if err = tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start release tracker 😣")
	}
	defer tracker.Stop()
	log.Info().Msg("release tracker started ✅")

	runHTTPServer(config, store, dispatcher)
}

func runHTTPServer(config util.Config, store db.Store, dispatcher *notification.Dispatcher) {
	server := api.NewServer(store, dispatcher, &config)

	err := server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
