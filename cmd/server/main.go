package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"github.com/whiterosespeakers/wrs-backend/internal/api"
	"github.com/whiterosespeakers/wrs-backend/internal/auth"
	"github.com/whiterosespeakers/wrs-backend/internal/config"
	"github.com/whiterosespeakers/wrs-backend/internal/idp"
	"github.com/whiterosespeakers/wrs-backend/internal/mailer"
	"github.com/whiterosespeakers/wrs-backend/internal/metrics"
	"github.com/whiterosespeakers/wrs-backend/internal/objectstore"
	"github.com/whiterosespeakers/wrs-backend/internal/store"
	"github.com/whiterosespeakers/wrs-backend/internal/transport"
	"github.com/whiterosespeakers/wrs-backend/internal/web"
	"github.com/whiterosespeakers/wrs-backend/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE_PATH"))
	if err != nil {
		return err
	}

	log := logger.Configure(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Auth.DevMode {
		log.Warn().Msg("dev mode enabled: fixed-token authentication bypass is active")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return fmt.Errorf("aws config: %w", err)
	}

	dynClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})

	stores := store.New(dynClient, cfg.Tables)
	objects := objectstore.New(s3.NewFromConfig(awsCfg), cfg.Storage.Bucket, cfg.Storage.CDNDomain, cfg.AWS.Region)
	users := idp.New(cognitoidentityprovider.NewFromConfig(awsCfg), cfg.Auth.UserPoolID, cfg.Auth.AdminGroup)
	mail := mailer.New(ses.NewFromConfig(awsCfg), cfg.Mail.Sender, cfg.Mail.Recipient)

	gate := auth.New(auth.Options{
		Region:     cfg.AWS.Region,
		UserPoolID: cfg.Auth.UserPoolID,
		AdminGroup: cfg.Auth.AdminGroup,
		DevMode:    cfg.Auth.DevMode,
	})

	recorder, err := metrics.New(cfg.Metrics.StatsdAddr)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	app := api.New(api.Deps{
		Articles:     stores.Articles,
		Events:       stores.Events,
		Gallery:      stores.Gallery,
		Subscribers:  stores.Subscribers,
		Team:         stores.Team,
		Testimonials: stores.Testimonials,
		Settings:     stores.Settings,
		Pages:        stores.Pages,
		Objects:      objects,
		Users:        users,
		Mail:         mail,
	})

	router := app.Router(gate, log, recorder)

	site, err := web.New()
	if err != nil {
		return fmt.Errorf("web templates: %w", err)
	}
	site.Register(router)

	switch cfg.Server.Runtime {
	case "lambda":
		lambda.Start(transport.NewLambdaHandler(router).Handle)
		return nil
	case "", "local":
		return transport.Serve(cfg.Server, router, log)
	default:
		return fmt.Errorf("unknown runtime %q", cfg.Server.Runtime)
	}
}
