package classroom

type TeamInfo struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	Desc       string `json:"desc"`
	TeacherId  string `json:"teacherId"`
	CreateTime int64  `json:"createTime"`
}

// TeamDetail nests the owning teacher, members and assignments, matching the
// byId view the frontend renders.
type TeamDetail struct {
	TeamInfo
	Teacher     *UserInfo         `json:"teacher,omitempty"`
	Students    []*UserInfo       `json:"students"`
	Assignments []*AssignmentInfo `json:"assignments"`
}

type CreateTeamReq struct {
	Name string `json:"name" form:"name" vd:"len($)>0"`
	Code string `json:"code" form:"code" vd:"len($)>0"`
	Desc string `json:"desc" form:"desc"`
}

type CreateTeamResp struct {
	Msg  string    `json:"msg"`
	Team *TeamInfo `json:"team"`
}

type UpdateTeamReq struct {
	Id   string  `path:"id" vd:"len($)>0"`
	Name *string `json:"name,omitempty" form:"name"`
	Desc *string `json:"desc,omitempty" form:"desc"`
}

type UpdateTeamResp struct {
	Msg  string    `json:"msg"`
	Team *TeamInfo `json:"team"`
}

type GetTeamReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

type GetTeamResp struct {
	Team *TeamDetail `json:"team"`
}

type ListTeamsResp struct {
	Teams []*TeamInfo `json:"teams"`
	Total int64       `json:"total"`
}

type JoinTeamReq struct {
	Code string `json:"code" form:"code" vd:"len($)>0"`
}

type JoinTeamResp struct {
	Msg  string    `json:"msg"`
	Team *TeamInfo `json:"team"`
}

type AddUserReq struct {
	TeamId string `json:"teamId" form:"teamId" vd:"len($)>0"`
	Sapid  int64  `json:"sapid" form:"sapid" vd:"$>0"`
}
