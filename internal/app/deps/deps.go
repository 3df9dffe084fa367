package deps

import (
	"context"
	"fmt"
	"resetme/internal/config"
	dl "resetme/internal/core/domain/logging"
	"resetme/internal/core/domain/user"
	dbuser "resetme/internal/db/user"
	"resetme/internal/implementations/email"
	"resetme/internal/implementations/logging"
	passwordhasher "resetme/internal/implementations/password_hasher"
	resettokengenerator "resetme/internal/implementations/reset_token_generator"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB *pgxpool.Pool

	Now func() time.Time

	AccountRepository   user.AccountRepository
	ResetTokenGenerator user.ResetTokenGenerator
	ResetTokenSender    user.ResetTokenSender
	PasswordHasher      user.PasswordHasher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.AccountRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ResetTokenGenerator = resettokengenerator.NewGenerator()
	deps.PasswordHasher = deps.initPasswordHasher()
	deps.ResetTokenSender = deps.initResetTokenSender()

	return deps, func() {
		closePgxPool()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initPasswordHasher() user.PasswordHasher {
	switch deps.Config.PasswordHasher {
	case config.PasswordHasherBcrypt:
		return passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptCost)
	default:
		return passwordhasher.NewSha256()
	}
}

func (deps *Deps) initResetTokenSender() user.ResetTokenSender {
	if deps.Config.EmailBackend == config.EmailBackendSES {
		return email.NewSESSender(
			deps.initAwsConfig(),
			deps.Config.AwsEmailSender,
			deps.Config.AwsEmailPasswordResetTemplate,
			deps.Config.ResetBaseURL,
		)
	}
	return email.NewSMTPSender(
		deps.Config.EmailHost,
		deps.Config.EmailPort,
		deps.Config.EmailUser,
		deps.Config.EmailPass,
		deps.Config.EmailFrom,
		deps.Config.ResetBaseURL,
	)
}

func (deps *Deps) initAwsConfig() aws.Config {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(fmt.Sprintf("could not load AWS config: %v", err))
	}
	return cfg
}
