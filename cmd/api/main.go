package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"researchhub/internal/adapter/api"
	"researchhub/internal/adapter/api/handler"
	apimiddleware "researchhub/internal/adapter/api/middleware"
	"researchhub/internal/adapter/api/router"
	"researchhub/internal/adapter/repository"
	"researchhub/internal/infrastructure/firebase"
	"researchhub/internal/infrastructure/ratelimit"
	"researchhub/internal/infrastructure/storage"
	"researchhub/internal/infrastructure/websocket"
	"researchhub/internal/usecase"
	"researchhub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account JSON rides in an env var in production; local
	// development falls back to a file path.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	ratelimit.Disabled = cfg.RateLimitOff

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	convRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	collabRepo := repository.NewFirestoreCollaborationRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	auditRepo := repository.NewFirestoreAuditLogRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	chatUseCase := usecase.NewChatUseCase(convRepo, userRepo, storageClient, wsManager)
	milestoneUseCase := usecase.NewMilestoneUseCase(convRepo)
	fundingUseCase := usecase.NewFundingUseCase(convRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo)
	collaborationUseCase := usecase.NewCollaborationUseCase(collabRepo, listingRepo, convRepo, notificationUseCase)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listingRepo, notificationUseCase)
	dashboardUseCase := usecase.NewDashboardUseCase(listingUseCase, collaborationUseCase, reviewUseCase, notificationUseCase)
	adminUseCase := usecase.NewAdminUseCase(userRepo, reviewRepo, auditRepo, notificationUseCase)

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Validator = api.NewValidator()

	router.Setup(e, router.Handlers{
		Auth:          handler.NewAuthHandler(authUseCase),
		Chat:          handler.NewChatHandler(chatUseCase),
		Milestone:     handler.NewMilestoneHandler(milestoneUseCase),
		Funding:       handler.NewFundingHandler(fundingUseCase),
		Notification:  handler.NewNotificationHandler(notificationUseCase),
		Listing:       handler.NewListingHandler(listingUseCase),
		Collaboration: handler.NewCollaborationHandler(collaborationUseCase),
		Review:        handler.NewReviewHandler(reviewUseCase),
		Dashboard:     handler.NewDashboardHandler(dashboardUseCase),
		Admin:         handler.NewAdminHandler(adminUseCase),
		WebSocket:     handler.NewWebSocketHandler(wsManager, chatUseCase, authMiddleware, cfg.SupportAdminID),
		Health:        handler.NewHealthHandler(firestoreClient),
	}, authMiddleware, adminMiddleware)

	log.Fatal(e.Start(":" + cfg.ServerPort))
}
