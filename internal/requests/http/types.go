package http

type createReq struct {
	Name               string  `json:"name" binding:"required"`
	Email              string  `json:"email" binding:"required,email"`
	ProjectDescription string  `json:"project_description" binding:"required"`
	Budget             *string `json:"budget"`
	Timeline           *string `json:"timeline"`
	ProjectType        *string `json:"project_type"`
}

type updateReq struct {
	Status string `json:"status" binding:"required"`
}

type listQuery struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}
