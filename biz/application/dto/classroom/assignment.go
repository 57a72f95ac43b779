package classroom

type AssignmentInfo struct {
	Id         string          `json:"id"`
	Name       string          `json:"name"`
	Desc       string          `json:"desc"`
	Deadline   int64           `json:"deadline"`
	TeamId     string          `json:"teamId"`
	TeacherId  string          `json:"teacherId"`
	CreateTime int64           `json:"createTime"`
	Documents  []*DocumentInfo `json:"documents,omitempty"`
}

type CreateAssignmentReq struct {
	Name     string `json:"name" form:"name" vd:"len($)>0"`
	TeamId   string `json:"teamId" form:"teamId" vd:"len($)>0"`
	Desc     string `json:"desc" form:"desc"`
	Deadline string `json:"deadline" form:"deadline" vd:"len($)>0"` // RFC 3339
}

type CreateAssignmentResp struct {
	Msg        string          `json:"msg"`
	Assignment *AssignmentInfo `json:"assignment"`
}

type GetAssignmentsByTeamReq struct {
	TeamId string `path:"teamId" vd:"len($)>0"`
}

type ListAssignmentsResp struct {
	Assignments []*AssignmentInfo `json:"assignments"`
	Total       int64             `json:"total"`
}

type UpdateAssignmentReq struct {
	Id       string  `path:"id" vd:"len($)>0"`
	Name     *string `json:"name,omitempty" form:"name"`
	Desc     *string `json:"desc,omitempty" form:"desc"`
	Deadline *string `json:"deadline,omitempty" form:"deadline"`
}

type UpdateAssignmentResp struct {
	Msg        string          `json:"msg"`
	Assignment *AssignmentInfo `json:"assignment"`
}

type DeleteAssignmentReq struct {
	Id string `path:"id" vd:"len($)>0"`
}
