package http

// Request payloads.

type setRatingRequest struct {
	Rating int `json:"rating"`
}

type setResourceStatusRequest struct {
	Status string `json:"status"`
}

type recordBreakRequest struct {
	DepartmentID string `json:"department_id"`
	BreakID      string `json:"break_id"`
}

// Response payloads.

type orderIDResponse struct {
	ID string `json:"id"`
}

type advanceStageResponse struct {
	OrderID          string  `json:"order_id"`
	OrderCompleted   bool    `json:"order_completed"`
	NextStageID      *string `json:"next_stage_id,omitempty"`
	NextDepartmentID *string `json:"next_department_id,omitempty"`
}

type stageResponse struct {
	ID             string  `json:"id"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	InOrder        int     `json:"in_order"`
	IsActive       bool    `json:"is_active"`
	UserID         *string `json:"user_id,omitempty"`
	BreakID        *string `json:"break_id,omitempty"`
}

type activeStageResponse struct {
	StageID        string  `json:"stage_id"`
	OrderID        string  `json:"order_id"`
	InOrder        int     `json:"in_order"`
	OrderStatus    string  `json:"order_status"`
	ResourceStatus string  `json:"resource_status"`
	UserID         *string `json:"user_id,omitempty"`
}

type claimableStageResponse struct {
	StageID        string `json:"stage_id"`
	OrderID        string `json:"order_id"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	InOrder        int    `json:"in_order"`
	ResourceStatus string `json:"resource_status"`
	ClaimedBySelf  bool   `json:"claimed_by_self"`
}

type breakReasonResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type eligibleBreakDepartmentResponse struct {
	DepartmentID   string                `json:"department_id"`
	DepartmentName string                `json:"department_name"`
	InOrder        int                   `json:"in_order"`
	Breaks         []breakReasonResponse `json:"breaks"`
}

// errResponse is the uniform error payload for all endpoints.
type errResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
