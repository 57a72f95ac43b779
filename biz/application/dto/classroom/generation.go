package classroom

type GenerationInfo struct {
	Id         string          `json:"id"`
	Name       string          `json:"name"`
	TeacherId  string          `json:"teacherId"`
	Output     string          `json:"output,omitempty"`
	CreateTime int64           `json:"createTime"`
	Documents  []*DocumentInfo `json:"documents,omitempty"`
}

type CreateGenerationReq struct {
	Name string `json:"name" form:"name" vd:"len($)>0"`
}

type CreateGenerationResp struct {
	Msg        string          `json:"msg"`
	Generation *GenerationInfo `json:"generation"`
}

type GetGenerationReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

type GetGenerationResp struct {
	Generation *GenerationInfo `json:"generation"`
}

type ListGenerationsResp struct {
	Generations []*GenerationInfo `json:"generations"`
	Total       int64             `json:"total"`
}

type UpdateGenerationReq struct {
	Id     string  `path:"id" vd:"len($)>0"`
	Name   *string `json:"name,omitempty" form:"name"`
	Output *string `json:"output,omitempty" form:"output"`
}

type UpdateGenerationResp struct {
	Msg        string          `json:"msg"`
	Generation *GenerationInfo `json:"generation"`
}

type DeleteGenerationReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

// Paper is the decoded shape of a generated question paper.
type Paper struct {
	Title     string           `json:"title" mapstructure:"title"`
	Questions []*PaperQuestion `json:"questions" mapstructure:"questions"`
}

type PaperQuestion struct {
	Question    string            `json:"question" mapstructure:"question"`
	Options     map[string]string `json:"options,omitempty" mapstructure:"options"`
	Answer      string            `json:"answer" mapstructure:"answer"`
	Explanation string            `json:"explanation,omitempty" mapstructure:"explanation"`
	Marks       int64             `json:"marks" mapstructure:"marks"`
}

type GeneratePaperReq struct {
	Id            string  `path:"id" vd:"len($)>0"`
	Subject       *string `json:"subject,omitempty" form:"subject"`
	QuestionCount *int64  `json:"questionCount,omitempty" form:"questionCount"`
}

type GeneratePaperResp struct {
	Msg   string `json:"msg"`
	Id    string `json:"id"`
	Paper *Paper `json:"paper"`
}

type GradeAnswerReq struct {
	Question string `json:"question" form:"question" vd:"len($)>0"`
	Answer   string `json:"answer" form:"answer" vd:"len($)>0"`
	MaxMarks int64  `json:"maxMarks" form:"maxMarks"`
}

type GradeAnswerResp struct {
	Marks    int64  `json:"marks"`
	Feedback string `json:"feedback"`
}
