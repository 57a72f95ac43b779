package provider

import (
	"class-hive/biz/application/service"
	"class-hive/biz/infrastructure/cache"
	"class-hive/biz/infrastructure/config"
	"class-hive/biz/infrastructure/repository/assignment"
	"class-hive/biz/infrastructure/repository/document"
	"class-hive/biz/infrastructure/repository/generation"
	"class-hive/biz/infrastructure/repository/question_bank"
	"class-hive/biz/infrastructure/repository/student"
	"class-hive/biz/infrastructure/repository/submission"
	"class-hive/biz/infrastructure/repository/teacher"
	"class-hive/biz/infrastructure/repository/team"
	"class-hive/biz/infrastructure/storage"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider holds the objects the controllers depend on.
type Provider struct {
	Config            *config.Config
	UserService       service.UserService
	TeamService       service.TeamService
	AssignmentService service.AssignmentService
	SubmissionService service.SubmissionService
	DocumentService   service.DocumentService
	GenerationService service.GenerationService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.IdentityResolverSet,
	service.UserServiceSet,
	service.TeamServiceSet,
	service.AssignmentServiceSet,
	service.SubmissionServiceSet,
	service.DocumentServiceSet,
	service.GenerationServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	student.NewMongoMapper,
	teacher.NewMongoMapper,
	team.NewMongoMapper,
	team.NewMemberMongoMapper,
	assignment.NewMongoMapper,
	submission.NewMongoMapper,
	document.NewMongoMapper,
	generation.NewMongoMapper,
	question_bank.NewMySQLMapperFromConfig,
	storage.NewClient,
	cache.NewPaperCacheMapper,
	wire.Bind(new(cache.IPaperCacheMapper), new(*cache.PaperCacheMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
