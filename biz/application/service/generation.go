package service

import (
	"context"
	"encoding/json"
	"fmt"

	"class-hive/biz/adaptor"
	"class-hive/biz/application/dto/basic"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/cache"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/document"
	"class-hive/biz/infrastructure/repository/generation"
	"class-hive/biz/infrastructure/repository/question_bank"
	"class-hive/biz/infrastructure/util"
	"class-hive/biz/infrastructure/util/log"
	"class-hive/biz/infrastructure/util/page"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

type IGenerationService interface {
	CreateGeneration(ctx context.Context, req *classroom.CreateGenerationReq) (*classroom.CreateGenerationResp, error)
	GetGeneration(ctx context.Context, req *classroom.GetGenerationReq) (*classroom.GetGenerationResp, error)
	ListGenerations(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListGenerationsResp, error)
	MyGenerations(ctx context.Context) (*classroom.ListGenerationsResp, error)
	UpdateGeneration(ctx context.Context, req *classroom.UpdateGenerationReq) (*classroom.UpdateGenerationResp, error)
	DeleteGeneration(ctx context.Context, req *classroom.DeleteGenerationReq) (*basic.Response, error)
	GeneratePaper(ctx context.Context, req *classroom.GeneratePaperReq) (*classroom.GeneratePaperResp, error)
	GetPaper(ctx context.Context, req *classroom.GetGenerationReq) (*classroom.GeneratePaperResp, error)
	GradeAnswer(ctx context.Context, req *classroom.GradeAnswerReq) (*classroom.GradeAnswerResp, error)
}

type GenerationService struct {
	GenerationMapper *generation.MongoMapper
	DocumentMapper   *document.MongoMapper
	PaperCache       cache.IPaperCacheMapper
	SeedBank         *question_bank.MySQLMapper
	Resolver         *IdentityResolver
}

var GenerationServiceSet = wire.NewSet(
	wire.Struct(new(GenerationService), "*"),
	wire.Bind(new(IGenerationService), new(*GenerationService)),
)

// CreateGeneration opens a named batch the teacher can attach source
// documents to before generating a paper.
func (s *GenerationService) CreateGeneration(ctx context.Context, req *classroom.CreateGenerationReq) (*classroom.CreateGenerationResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	g := &generation.QuestionGeneration{
		Name:      req.Name,
		TeacherID: identity.Id(),
	}
	if err := s.GenerationMapper.Insert(ctx, g); err != nil {
		log.Error("create generation failed: %v", err)
		return nil, consts.ErrCreateGeneration
	}

	return &classroom.CreateGenerationResp{
		Msg:        "generation created successfully",
		Generation: generationInfo(g),
	}, nil
}

func (s *GenerationService) GetGeneration(ctx context.Context, req *classroom.GetGenerationReq) (*classroom.GetGenerationResp, error) {
	_, g, err := s.resolveOwned(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	info := generationInfo(g)
	if docs, err := s.DocumentMapper.FindByGeneration(ctx, g.ID.Hex()); err == nil {
		info.Documents = documentInfos(docs)
	}
	return &classroom.GetGenerationResp{Generation: info}, nil
}

func (s *GenerationService) ListGenerations(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListGenerationsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	pageNum, pageSize := page.Parse(req)
	generations, total, err := s.GenerationMapper.FindAll(ctx, pageNum, pageSize)
	if err != nil {
		log.Error("list generations failed: %v", err)
		return nil, consts.ErrNotFound
	}
	return s.listResp(generations, total), nil
}

// MyGenerations lists the calling teacher's batches.
func (s *GenerationService) MyGenerations(ctx context.Context) (*classroom.ListGenerationsResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	generations, total, err := s.GenerationMapper.FindByTeacher(ctx, identity.Id())
	if err != nil {
		log.Error("list own generations failed: %v", err)
		return nil, consts.ErrNotFound
	}
	return s.listResp(generations, total), nil
}

func (s *GenerationService) UpdateGeneration(ctx context.Context, req *classroom.UpdateGenerationReq) (*classroom.UpdateGenerationResp, error) {
	_, g, err := s.resolveOwned(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Output != nil {
		g.Output = *req.Output
		// the cached paper no longer matches the stored output
		if err := s.PaperCache.Delete(ctx, g.ID.Hex()); err != nil {
			log.Error("invalidate paper cache failed: %v", err)
		}
	}
	if err := s.GenerationMapper.Update(ctx, g); err != nil {
		log.Error("update generation failed: %v", err)
		return nil, consts.ErrUpdate
	}

	return &classroom.UpdateGenerationResp{
		Msg:        "generation updated successfully",
		Generation: generationInfo(g),
	}, nil
}

func (s *GenerationService) DeleteGeneration(ctx context.Context, req *classroom.DeleteGenerationReq) (*basic.Response, error) {
	_, _, err := s.resolveOwned(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.PaperCache.Delete(ctx, req.Id); err != nil {
		log.Error("invalidate paper cache failed: %v", err)
	}
	if err := s.GenerationMapper.Delete(ctx, req.Id); err != nil {
		log.Error("delete generation failed: %v", err)
		return nil, consts.ErrDelete
	}
	return util.Succeed("generation deleted successfully")
}

// GeneratePaper builds a question paper from the batch's uploaded documents,
// seasoned with seed questions from the institutional bank, and stores the
// result on the batch.
func (s *GenerationService) GeneratePaper(ctx context.Context, req *classroom.GeneratePaperReq) (*classroom.GeneratePaperResp, error) {
	_, g, err := s.resolveOwned(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	docs, err := s.DocumentMapper.FindByGeneration(ctx, g.ID.Hex())
	if err != nil {
		log.Error("list generation documents failed: %v", err)
		return nil, consts.ErrGeneratePaper
	}
	if len(docs) == 0 {
		return nil, consts.ErrNoFiles
	}
	urls := lo.Map(docs, func(d *document.Document, _ int) string { return d.URL })

	subject := ""
	if req.Subject != nil {
		subject = *req.Subject
	}
	questionCount := int64(consts.DefaultPaperQuestionCount)
	if req.QuestionCount != nil && *req.QuestionCount > 0 {
		questionCount = *req.QuestionCount
	}

	seeds := s.loadSeeds(ctx, subject)

	client := util.GetHttpClient()
	ret, err := client.GeneratePaper(ctx, g.Name, urls, seeds, questionCount)
	if err != nil {
		log.CtxError(ctx, "generate paper call failed: %v", err)
		return nil, consts.ErrGeneratePaper
	}
	if cast.ToInt64(ret["code"]) != 0 {
		log.CtxError(ctx, "generate paper rejected: %v", ret["msg"])
		return nil, consts.ErrGeneratePaper
	}

	paper, err := decodePaper(ret["data"])
	if err != nil {
		log.CtxError(ctx, "decode paper failed: %v", err)
		return nil, consts.ErrGeneratePaper
	}

	output, err := json.Marshal(paper)
	if err != nil {
		return nil, consts.ErrGeneratePaper
	}
	g.Output = string(output)
	if err := s.GenerationMapper.Update(ctx, g); err != nil {
		log.Error("store generated paper failed: %v", err)
		return nil, consts.ErrUpdate
	}

	s.warmCache(g.ID.Hex(), paper)

	return &classroom.GeneratePaperResp{
		Msg:   "paper generated successfully",
		Id:    g.ID.Hex(),
		Paper: paper,
	}, nil
}

// GetPaper returns the generated paper for a batch, served from the cache
// when warm.
func (s *GenerationService) GetPaper(ctx context.Context, req *classroom.GetGenerationReq) (*classroom.GeneratePaperResp, error) {
	_, g, err := s.resolveOwned(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if paper, err := s.PaperCache.Get(ctx, g.ID.Hex()); err == nil {
		return &classroom.GeneratePaperResp{Msg: "success", Id: g.ID.Hex(), Paper: paper}, nil
	}

	if g.Output == "" {
		return nil, consts.ErrGenerationPending
	}

	paper := new(classroom.Paper)
	if err := json.Unmarshal([]byte(g.Output), paper); err != nil {
		log.Error("parse stored paper failed: %v", err)
		return nil, consts.ErrGeneratePaper
	}
	s.warmCache(g.ID.Hex(), paper)

	return &classroom.GeneratePaperResp{Msg: "success", Id: g.ID.Hex(), Paper: paper}, nil
}

// GradeAnswer marks a free-form answer against a question. Any signed-in
// account may ask; students use it to self-check quiz answers.
func (s *GenerationService) GradeAnswer(ctx context.Context, req *classroom.GradeAnswerReq) (*classroom.GradeAnswerResp, error) {
	if _, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx)); err != nil {
		return nil, err
	}

	maxMarks := req.MaxMarks
	if maxMarks <= 0 {
		maxMarks = 10
	}

	client := util.GetHttpClient()
	ret, err := client.GradeAnswer(ctx, req.Question, req.Answer, maxMarks)
	if err != nil {
		log.CtxError(ctx, "grade answer call failed: %v", err)
		return nil, consts.ErrGradeAnswer
	}
	return gradeResult(ret)
}

// gradeResult maps the model endpoint's reply onto the response view.
func gradeResult(ret map[string]any) (*classroom.GradeAnswerResp, error) {
	if cast.ToInt64(ret["code"]) != 0 {
		return nil, consts.ErrGradeAnswer
	}
	data, ok := ret["data"].(map[string]any)
	if !ok {
		return nil, consts.ErrGradeAnswer
	}
	return &classroom.GradeAnswerResp{
		Marks:    cast.ToInt64(data["marks"]),
		Feedback: cast.ToString(data["feedback"]),
	}, nil
}

// resolveOwned loads a batch and checks the caller is its teacher.
func (s *GenerationService) resolveOwned(ctx context.Context, id string) (*Identity, *generation.QuestionGeneration, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, nil, err
	}

	g, err := s.GenerationMapper.FindOne(ctx, id)
	if err != nil {
		return nil, nil, consts.ErrNotFound
	}
	if identity.Role != consts.RoleTeacher || g.TeacherID != identity.Id() {
		return nil, nil, consts.ErrForbidden
	}
	return identity, g, nil
}

// loadSeeds pulls a handful of bank questions as few-shot material. The bank
// being down only degrades the prompt, it never blocks generation.
func (s *GenerationService) loadSeeds(ctx context.Context, subject string) []string {
	questions, err := s.SeedBank.ListSeedQuestions(ctx, subject, consts.DefaultSeedQuestionCount)
	if err != nil {
		log.Error("load seed questions failed: %v", err)
		return nil
	}

	seeds := make([]string, 0, len(questions))
	for _, q := range questions {
		content := question_bank.SafeString(q.Content)
		if content == "" {
			continue
		}
		if answer := question_bank.SafeString(q.Answer); answer != "" {
			content = fmt.Sprintf("%s Answer: %s", content, answer)
		}
		seeds = append(seeds, content)
	}
	return seeds
}

func (s *GenerationService) warmCache(id string, paper *classroom.Paper) {
	gopool.Go(func() {
		if err := s.PaperCache.Set(context.Background(), id, paper); err != nil {
			log.Error("warm paper cache failed: %v", err)
		}
	})
}

func (s *GenerationService) listResp(generations []*generation.QuestionGeneration, total int64) *classroom.ListGenerationsResp {
	resp := &classroom.ListGenerationsResp{Generations: make([]*classroom.GenerationInfo, 0, len(generations))}
	for _, g := range generations {
		resp.Generations = append(resp.Generations, generationInfo(g))
	}
	resp.Total = total
	return resp
}

// decodePaper turns the loosely typed model response into a Paper. Numeric
// fields often arrive as float64 or string, so decoding is weakly typed.
func decodePaper(data any) (*classroom.Paper, error) {
	dataMap, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected data shape: %T", data)
	}

	paper := new(classroom.Paper)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           paper,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(dataMap); err != nil {
		return nil, err
	}
	if len(paper.Questions) == 0 {
		return nil, fmt.Errorf("paper has no questions")
	}
	return paper, nil
}
