package e2e

import (
	"bytes"
	"context"
	"fmt"
	"recipe-manager/repositories"
	"recipe-manager/services"
	"recipe-manager/ui"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type BaseMongoSuite struct {
	suite.Suite
	Config     Config
	Collection string
	client     *mongo.Client
	repository *repositories.RecipeRepository
}

// SetupSuite loads the environment configuration and connects to MongoDB.
func (s *BaseMongoSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.MongoURI == "" {
		s.T().Skip("E2E_MONGO_URI is not set")
	}
	s.Collection = fmt.Sprintf("recipes_%d", time.Now().UnixNano())
	s.client, s.repository, err = repositories.Open(context.Background(), repositories.Options{
		URI:        s.Config.MongoURI,
		Database:   s.Config.Database,
		Collection: s.Collection,
	}, logs.GetLoggerFromString("DEBUG"))
	s.Require().NoError(err, "Failed to connect to MongoDB at "+s.Config.MongoURI)
}

// TearDownSuite drops the collection created for the run.
func (s *BaseMongoSuite) TearDownSuite() {
	if s.client == nil {
		return
	}
	ctx := context.Background()
	_ = s.client.Database(s.Config.Database).Collection(s.Collection).Drop(ctx)
	_ = s.client.Disconnect(ctx)
}

// WithConsole types input into a fresh console wired to MongoDB and hands
// the printed transcript to fn.
func (s *BaseMongoSuite) WithConsole(name, exportPath string, input []string, fn func(output string)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	log := logs.GetLoggerFromString("ERROR")
	service := services.NewRecipeService(s.repository, log)
	var out bytes.Buffer
	console := ui.NewConsole(service, strings.NewReader(strings.Join(input, "\n")+"\n"), &out, log,
		ui.Options{ExportPath: exportPath})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	s.Require().NoError(console.Run(ctx))

	if s.Config.DebugOutput {
		s.T().Log("\nOUTPUT:\n" + out.String())
	}
	fn(out.String())
}
