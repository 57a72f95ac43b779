package classroom

type SubmissionInfo struct {
	Id           string          `json:"id"`
	StudentId    string          `json:"studentId"`
	AssignmentId string          `json:"assignmentId"`
	Desc         string          `json:"desc"`
	Marks        int64           `json:"marks"`
	Remarks      string          `json:"remarks"`
	CreateTime   int64           `json:"createTime"`
	UpdateTime   int64           `json:"updateTime"`
	Student      *UserInfo       `json:"student,omitempty"`
	Assignment   *AssignmentInfo `json:"assignment,omitempty"`
	Documents    []*DocumentInfo `json:"documents,omitempty"`
}

type CreateSubmissionReq struct {
	AssignmentId string `json:"assignmentId" form:"assignmentId" vd:"len($)>0"`
	Desc         string `json:"desc" form:"desc"`
}

type CreateSubmissionResp struct {
	Msg        string          `json:"msg"`
	Submission *SubmissionInfo `json:"submission"`
}

type ListSubmissionsResp struct {
	Submissions []*SubmissionInfo `json:"submissions"`
	Total       int64             `json:"total"`
}

type GetSubmissionsByAssignmentReq struct {
	AssignmentId string `path:"assignmentId" vd:"len($)>0"`
}

type GetSubmissionReq struct {
	SubmissionId string `path:"submissionId" vd:"len($)>0"`
}

type GetSubmissionResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type GetStudentSubmissionReq struct {
	StudentId    string `path:"studentId" vd:"len($)>0"`
	AssignmentId string `path:"assignmentId" vd:"len($)>0"`
}

type UpdateSubmissionReq struct {
	SubmissionId string  `path:"submissionId" vd:"len($)>0"`
	Desc         *string `json:"desc,omitempty" form:"desc"`
	Marks        *int64  `json:"marks,omitempty" form:"marks"`
	Remarks      *string `json:"remarks,omitempty" form:"remarks"`
}

type UpdateSubmissionResp struct {
	Msg        string          `json:"msg"`
	Submission *SubmissionInfo `json:"submission"`
}

type DeleteSubmissionReq struct {
	SubmissionId string `path:"submissionId" vd:"len($)>0"`
}
