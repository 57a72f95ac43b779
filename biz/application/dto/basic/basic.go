package basic

// UserMeta is the identity carried by a bearer token.
type UserMeta struct {
	UserId string `json:"userId" mapstructure:"userId"`
	Role   string `json:"role" mapstructure:"role"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetRole() string {
	if m == nil {
		return ""
	}
	return m.Role
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty" form:"page" query:"page"`
	Limit *int64 `json:"limit,omitempty" form:"limit" query:"limit"`
}

type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}
