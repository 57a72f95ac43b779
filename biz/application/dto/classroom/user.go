package classroom

import "class-hive/biz/application/dto/basic"

// UserInfo is the public shape of a student or teacher record. The password
// hash never leaves the service layer.
type UserInfo struct {
	Id         string `json:"id"`
	Sapid      int64  `json:"sapid"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Desc       string `json:"desc"`
	Pfp        string `json:"pfp,omitempty"`
	CreateTime int64  `json:"createTime"`
}

type RegisterReq struct {
	Sapid    int64  `json:"sapid" form:"sapid" vd:"$>0"`
	Username string `json:"username" form:"username" vd:"len($)>0"`
	Email    string `json:"email" form:"email" vd:"len($)>0"`
	Password string `json:"password" form:"password" vd:"len($)>0"`
	Desc     string `json:"desc" form:"desc"`
}

type RegisterResp struct {
	Msg  string    `json:"msg"`
	User *UserInfo `json:"user"`
}

type LoginReq struct {
	Sapid    int64  `json:"sapid" form:"sapid" vd:"$>0"`
	Password string `json:"password" form:"password" vd:"len($)>0"`
}

type LoginResp struct {
	Msg          string `json:"msg"`
	Token        string `json:"token"`
	Id           string `json:"id"`
	AccessExpire int64  `json:"accessExpire"`
}

type GetUserReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

type GetUserResp struct {
	User *UserInfo `json:"user"`
}

type ListUsersReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty" query:"paginationOptions"`
}

type ListUsersResp struct {
	Users []*UserInfo `json:"users"`
	Total int64       `json:"total"`
}

type SearchUsersReq struct {
	Query string `json:"query" form:"query" query:"query" vd:"len($)>0"`
}

type UpdateUserReq struct {
	Username *string `json:"username,omitempty" form:"username"`
	Email    *string `json:"email,omitempty" form:"email"`
	Desc     *string `json:"desc,omitempty" form:"desc"`
}

type UpdateUserResp struct {
	Msg  string    `json:"msg"`
	User *UserInfo `json:"user"`
}

type UploadPicResp struct {
	Msg  string    `json:"msg"`
	Url  string    `json:"url"`
	User *UserInfo `json:"user"`
}

type DeleteUserReq struct {
	Id string `path:"id" vd:"len($)>0"`
}
