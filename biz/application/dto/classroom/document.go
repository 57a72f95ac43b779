package classroom

type DocumentInfo struct {
	Id           string `json:"id"`
	Url          string `json:"url"`
	AssignmentId string `json:"assignmentId,omitempty"`
	SubmissionId string `json:"submissionId,omitempty"`
	GenerationId string `json:"generationId,omitempty"`
	CreateTime   int64  `json:"createTime"`
}

// UploadDocumentReq carries the form fields of a multipart upload; the files
// themselves are read from the request in the controller.
type UploadDocumentReq struct {
	AssignmentId string `form:"assignmentId"`
	SubmissionId string `form:"submissionId"`
	GenerationId string `form:"generationId"`
}

type UploadDocumentResp struct {
	Msg       string          `json:"msg"`
	Documents []*DocumentInfo `json:"documents"`
}

type ListDocumentsResp struct {
	Documents []*DocumentInfo `json:"documents"`
	Total     int64           `json:"total"`
}

type DeleteDocumentReq struct {
	Id string `path:"id" vd:"len($)>0"`
}
